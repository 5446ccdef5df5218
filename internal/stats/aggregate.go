// Package stats aggregates a card collection into per-axis totals.
package stats

import (
	"github.com/ramonehamilton/altered-companion/internal/cards"
	"go.uber.org/zap"
)

// Axis names a classification axis.
type Axis string

// Classification axes.
const (
	AxisFaction Axis = "faction"
	AxisRarity  Axis = "rarity"
	AxisType    Axis = "type"
)

// Totals is the result of one aggregation pass.
type Totals struct {
	Factions Breakdown `json:"factions"`
	Rarities Breakdown `json:"rarities"`
	Types    Breakdown `json:"types"`

	// Sum of owned quantities.
	CollectionCount int `json:"collection_count"`
	// Number of distinct cards seen.
	KnownCardsCount int `json:"known_cards_count"`
	// Number of distinct cards owned at least once.
	DifferentCardsCount int `json:"different_cards_count"`
}

// Breakdown returns the breakdown for an axis.
func (t Totals) Breakdown(axis Axis) (Breakdown, bool) {
	switch axis {
	case AxisFaction:
		return t.Factions, true
	case AxisRarity:
		return t.Rarities, true
	case AxisType:
		return t.Types, true
	}
	return Breakdown{}, false
}

// FoilerCount returns the FOILER type bucket. It is always zero unless
// foilers are included in the pass.
func (t Totals) FoilerCount() int {
	return t.Types.Count(string(cards.TypeFoiler))
}

// UnknownTypeCount returns the quantity of cards with an unrecognized type.
func (t Totals) UnknownTypeCount() int {
	return t.Types.Unclassified()
}

// Options controls the aggregation pass.
type Options struct {
	// IncludeFoilers counts FOILER cards instead of skipping them.
	IncludeFoilers bool
}

// Compute runs a single pass over the collection. The result does not
// depend on iteration order.
func Compute(collection cards.Collection, opts Options) Totals {
	totals := Totals{
		Factions: newBreakdown(factionLabels()),
		Rarities: newBreakdown(rarityLabels()),
		Types:    newBreakdown(typeLabels()),
	}

	for _, card := range collection {
		if card.IsFoiler() && !opts.IncludeFoilers {
			continue
		}

		quantity := card.InMyCollection
		totals.KnownCardsCount++
		totals.CollectionCount += quantity
		if quantity > 0 {
			totals.DifferentCardsCount++
		}

		totals.Factions.add(string(card.MainFaction), quantity)
		totals.Rarities.add(string(card.Rarity), quantity)
		totals.Types.add(string(card.Type), quantity)
	}

	return totals
}

// Aggregator computes totals and logs the collection summary.
type Aggregator struct {
	opts   Options
	logger *zap.Logger
}

// NewAggregator creates an Aggregator. A nil logger disables logging.
func NewAggregator(opts Options, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{opts: opts, logger: logger}
}

// Aggregate computes the totals for the collection.
func (a *Aggregator) Aggregate(collection cards.Collection) Totals {
	totals := Compute(collection, a.opts)

	a.logger.Info("Collection count", zap.Int("count", totals.CollectionCount))
	a.logger.Info("Known cards count", zap.Int("count", totals.KnownCardsCount))
	a.logger.Info("Different cards count", zap.Int("count", totals.DifferentCardsCount))
	a.logger.Debug("Unclassified quantities",
		zap.Int("faction", totals.Factions.Unclassified()),
		zap.Int("rarity", totals.Rarities.Unclassified()),
		zap.Int("type", totals.Types.Unclassified()),
	)
	if a.logger.Core().Enabled(zap.DebugLevel) {
		a.logUnclassified(collection, totals)
	}

	return totals
}

func (a *Aggregator) logUnclassified(collection cards.Collection, totals Totals) {
	for _, card := range collection {
		if card.IsFoiler() && !a.opts.IncludeFoilers {
			continue
		}
		if totals.Factions.recognizes(string(card.MainFaction)) &&
			totals.Rarities.recognizes(string(card.Rarity)) &&
			totals.Types.recognizes(string(card.Type)) {
			continue
		}

		a.logger.Debug("Unclassified card",
			zap.String("id", card.ID),
			zap.String("name", card.DisplayName("en")),
			zap.String("collector_number", card.CollectorNumberPrinted),
			zap.String("faction", string(card.MainFaction)),
			zap.String("rarity", string(card.Rarity)),
			zap.String("type", string(card.Type)),
		)
	}
}

func factionLabels() []string {
	labels := make([]string, len(cards.AllFactions))
	for i, f := range cards.AllFactions {
		labels[i] = string(f)
	}
	return labels
}

func rarityLabels() []string {
	labels := make([]string, len(cards.AllRarities))
	for i, r := range cards.AllRarities {
		labels[i] = string(r)
	}
	return labels
}

func typeLabels() []string {
	labels := make([]string, len(cards.AllTypes))
	for i, t := range cards.AllTypes {
		labels[i] = string(t)
	}
	return labels
}
