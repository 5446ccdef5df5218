package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ramonehamilton/altered-companion/internal/cards"
	"github.com/ramonehamilton/altered-companion/internal/stats"
)

func testTotals() stats.Totals {
	return stats.Compute(cards.Collection{
		"a": {Type: cards.TypeHero, MainFaction: cards.FactionAxiom, Rarity: cards.RarityCommon, InMyCollection: 2},
		"b": {Type: cards.TypeSpell, MainFaction: "NE", Rarity: cards.RarityRare, InMyCollection: 1},
	}, stats.Options{})
}

func TestExportJSON(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "totals.json")

	exporter := NewExporter(Options{
		Format:     FormatJSON,
		FilePath:   filePath,
		PrettyJSON: true,
	})
	if err := exporter.Export(testTotals()); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		t.Fatalf("Failed to read export file: %v", err)
	}

	var result struct {
		Factions struct {
			Counts       map[string]int `json:"counts"`
			Unclassified int            `json:"unclassified"`
		} `json:"factions"`
		CollectionCount     int `json:"collection_count"`
		KnownCardsCount     int `json:"known_cards_count"`
		DifferentCardsCount int `json:"different_cards_count"`
	}
	if err := json.Unmarshal(content, &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if result.CollectionCount != 3 {
		t.Errorf("Expected collection count 3, got %d", result.CollectionCount)
	}
	if result.Factions.Counts["AX"] != 2 {
		t.Errorf("Expected AX count 2, got %d", result.Factions.Counts["AX"])
	}
	if result.Factions.Unclassified != 1 {
		t.Errorf("Expected 1 unclassified faction, got %d", result.Factions.Unclassified)
	}
	if !strings.Contains(string(content), "\n  ") {
		t.Error("Expected indented JSON")
	}
}

func TestExportCSV(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "nested", "totals.csv")

	exporter := NewExporter(Options{Format: FormatCSV, FilePath: filePath})
	if err := exporter.Export(testTotals()); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		t.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}

	// header + 20 rows
	if len(records) != 21 {
		t.Fatalf("Expected 21 records, got %d", len(records))
	}
	if strings.Join(records[0], ",") != "axis,label,count" {
		t.Errorf("Unexpected header: %v", records[0])
	}
	if strings.Join(records[1], ",") != "faction,AX,2" {
		t.Errorf("Unexpected first row: %v", records[1])
	}
	if strings.Join(records[20], ",") != "collection,different_cards_count,2" {
		t.Errorf("Unexpected last row: %v", records[20])
	}
}

func TestExportNoOverwrite(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "totals.json")
	if err := os.WriteFile(filePath, []byte("existing"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	exporter := NewExporter(Options{Format: FormatJSON, FilePath: filePath, Overwrite: false})
	if err := exporter.Export(testTotals()); err == nil {
		t.Error("Expected error when file exists and overwrite is false")
	}

	content, _ := os.ReadFile(filePath)
	if string(content) != "existing" {
		t.Error("Existing file must not be modified")
	}

	exporter = NewExporter(Options{Format: FormatJSON, FilePath: filePath, Overwrite: true})
	if err := exporter.Export(testTotals()); err != nil {
		t.Errorf("Export with overwrite failed: %v", err)
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "totals.xml")
	exporter := NewExporter(Options{Format: "xml", FilePath: filePath})
	if err := exporter.Export(testTotals()); err == nil {
		t.Error("Expected error for unsupported format")
	}
	if _, err := os.Stat(filePath); !os.IsNotExist(err) {
		t.Error("No file should be created for an unsupported format")
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, testTotals(), false); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"known_cards_count":2`) {
		t.Errorf("Unexpected JSON output: %s", buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"csv", FormatCSV, false},
		{"yaml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
