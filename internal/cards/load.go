package cards

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load reads a cards.json file from disk.
func Load(path string) (Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cards file: %w", err)
	}
	defer f.Close()

	collection, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return collection, nil
}

// Decode parses a cards.json document. Unknown fields are ignored.
func Decode(r io.Reader) (Collection, error) {
	var collection Collection
	if err := json.NewDecoder(r).Decode(&collection); err != nil {
		return nil, fmt.Errorf("decode cards: %w", err)
	}
	if collection == nil {
		collection = Collection{}
	}
	return collection, nil
}
