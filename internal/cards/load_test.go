package cards

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCards = `{
  "ALT_CORE_B_AX_01_C": {
    "id": "ALT_CORE_B_AX_01_C",
    "type": "HERO",
    "subtypes": [],
    "mainFaction": "AX",
    "rarity": "COMMON",
    "name": {"en": "Sierra & Oddball", "fr": "Sierra & Oddball"},
    "collectorNumberPrinted": "BTG-001",
    "elements": {"MAIN_COST": "0"},
    "inMyCollection": 2
  },
  "ALT_CORE_B_NE_01_C": {
    "id": "ALT_CORE_B_NE_01_C",
    "type": "PERMANENT",
    "mainFaction": "NE",
    "rarity": "COMMON",
    "name": {"fr": "Le Refuge"}
  }
}`

func TestDecode(t *testing.T) {
	collection, err := Decode(strings.NewReader(sampleCards))
	require.NoError(t, err)
	require.Len(t, collection, 2)

	hero := collection["ALT_CORE_B_AX_01_C"]
	assert.Equal(t, TypeHero, hero.Type)
	assert.Equal(t, FactionAxiom, hero.MainFaction)
	assert.Equal(t, RarityCommon, hero.Rarity)
	assert.Equal(t, 2, hero.InMyCollection)
	assert.Equal(t, "BTG-001", hero.CollectorNumberPrinted)

	refuge := collection["ALT_CORE_B_NE_01_C"]
	assert.Equal(t, 0, refuge.InMyCollection, "missing quantity decodes to zero")
	assert.Equal(t, Faction("NE"), refuge.MainFaction)
}

func TestDecode_EmptyDocument(t *testing.T) {
	collection, err := Decode(strings.NewReader("null"))
	require.NoError(t, err)
	assert.NotNil(t, collection)
	assert.Empty(t, collection)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleCards), 0o644))

	collection, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, collection, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCard_DisplayName(t *testing.T) {
	card := Card{ID: "X", Name: map[string]string{"en": "Bolt", "fr": "Éclair"}}
	assert.Equal(t, "Éclair", card.DisplayName("fr"))
	assert.Equal(t, "Bolt", card.DisplayName("de"))
	assert.Equal(t, "Y", Card{ID: "Y"}.DisplayName("en"))
}
