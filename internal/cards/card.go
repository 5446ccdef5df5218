// Package cards models Altered cards as written by the card fetcher to cards.json.
package cards

// Type is the functional category of a card.
type Type string

// Card types known to the collection export.
const (
	TypeHero      Type = "HERO"
	TypeCharacter Type = "CHARACTER"
	TypeSpell     Type = "SPELL"
	TypePermanent Type = "PERMANENT" // shown as "Landmark"
	TypeFoiler    Type = "FOILER"
)

// Faction is the main faction reference of a card.
type Faction string

// Factions known to the collection export. Neutral cards ("NE") have no constant.
const (
	FactionAxiom  Faction = "AX"
	FactionBravos Faction = "BR"
	FactionLyra   Faction = "LY"
	FactionMuna   Faction = "MU"
	FactionOrdis  Faction = "OR"
	FactionYzmir  Faction = "YZ"
)

// Rarity is the scarcity tier of a card.
type Rarity string

// Rarities known to the collection export.
const (
	RarityCommon Rarity = "COMMON"
	RarityRare   Rarity = "RARE"
	RarityUnique Rarity = "UNIQUE"
)

// AllFactions lists the recognized factions in display order.
var AllFactions = []Faction{
	FactionAxiom,
	FactionBravos,
	FactionLyra,
	FactionMuna,
	FactionOrdis,
	FactionYzmir,
}

// AllRarities lists the recognized rarities in display order.
var AllRarities = []Rarity{RarityCommon, RarityRare, RarityUnique}

// AllTypes lists the recognized card types in display order.
var AllTypes = []Type{TypeHero, TypeCharacter, TypeSpell, TypePermanent, TypeFoiler}

// Card is a single collection entry.
type Card struct {
	ID   string            `json:"id"`
	Name map[string]string `json:"name,omitempty"` // language -> name

	Type        Type    `json:"type"`
	MainFaction Faction `json:"mainFaction"`
	Rarity      Rarity  `json:"rarity"`

	CollectorNumberPrinted string `json:"collectorNumberPrinted,omitempty"`

	// Quantity owned. Absent when the export was made without a collection token.
	InMyCollection int `json:"inMyCollection"`
}

// DisplayName returns the card name in the given language, falling back to
// English and then to the card ID.
func (c Card) DisplayName(lang string) string {
	if name, ok := c.Name[lang]; ok && name != "" {
		return name
	}
	if name, ok := c.Name["en"]; ok && name != "" {
		return name
	}
	return c.ID
}

// IsFoiler reports whether the card is a foiler variant.
func (c Card) IsFoiler() bool {
	return c.Type == TypeFoiler
}

// Collection maps card ID to card. Keys are informational only.
type Collection map[string]Card
