package charts

import (
	"fmt"

	"github.com/ramonehamilton/altered-companion/internal/cards"
	"github.com/ramonehamilton/altered-companion/internal/stats"
)

// Targets names the mount point of each chart.
type Targets struct {
	Factions string
	Rarities string
	Types    string
}

// DefaultTargets returns the mount points used by the collection page.
func DefaultTargets() Targets {
	return Targets{
		Factions: "#factions",
		Rarities: "#rarities",
		Types:    "#types",
	}
}

type slice struct {
	key   string
	label string
	color string
}

var factionSlices = []slice{
	{string(cards.FactionAxiom), "Axiom", "rgb(140, 67, 42)"},
	{string(cards.FactionBravos), "Bravos", "rgb(195, 38, 55)"},
	{string(cards.FactionLyra), "Lyra", "rgb(207, 65, 113)"},
	{string(cards.FactionMuna), "Muna", "rgb(61, 107, 66)"},
	{string(cards.FactionOrdis), "Ordis", "rgb(15, 101, 147)"},
	{string(cards.FactionYzmir), "Yzmir", "rgb(118, 72, 145)"},
}

var raritySlices = []slice{
	{string(cards.RarityCommon), "Common", "rgb(190, 190, 190)"},
	{string(cards.RarityRare), "Rare", "rgb(0, 102, 255)"},
	{string(cards.RarityUnique), "Unique", "rgb(255, 215, 0)"},
}

// Foilers and unknown types are counted but not drawn.
var typeSlices = []slice{
	{key: string(cards.TypeHero), label: "Hero"},
	{key: string(cards.TypeCharacter), label: "Character"},
	{key: string(cards.TypeSpell), label: "Spell"},
	{key: string(cards.TypePermanent), label: "Landmark"},
}

func axisSlices(axis stats.Axis) []slice {
	switch axis {
	case stats.AxisFaction:
		return factionSlices
	case stats.AxisRarity:
		return raritySlices
	case stats.AxisType:
		return typeSlices
	}
	return nil
}

// AxisCounts returns the drawn labels of an axis and their counts, in chart
// order. Unclassified quantities and foilers are not included.
func AxisCounts(totals stats.Totals, axis stats.Axis) ([]string, []int) {
	b, ok := totals.Breakdown(axis)
	if !ok {
		return nil, nil
	}

	slices := axisSlices(axis)
	labels := make([]string, len(slices))
	values := make([]int, len(slices))
	for i, s := range slices {
		labels[i] = s.label
		values[i] = b.Count(s.key)
	}
	return labels, values
}

// Presenter turns totals into three pie charts.
type Presenter struct {
	renderer Renderer
	style    Style
	layout   Layout
}

// NewPresenter creates a Presenter drawing with the given style and layout.
func NewPresenter(renderer Renderer, style Style, layout Layout) *Presenter {
	return &Presenter{
		renderer: renderer,
		style:    style,
		layout:   layout,
	}
}

// Present renders the factions, rarities and types charts, in that order.
// It stops at the first renderer error.
func (p *Presenter) Present(totals stats.Totals, targets Targets) error {
	steps := []struct {
		name   string
		target string
		cfg    PieConfig
	}{
		{"factions", targets.Factions, p.FactionsConfig(totals)},
		{"rarities", targets.Rarities, p.RaritiesConfig(totals)},
		{"types", targets.Types, p.TypesConfig(totals)},
	}

	for _, step := range steps {
		if err := p.renderer.Render(step.target, step.cfg); err != nil {
			return fmt.Errorf("render %s chart: %w", step.name, err)
		}
	}
	return nil
}

// FactionsConfig builds the factions pie.
func (p *Presenter) FactionsConfig(totals stats.Totals) PieConfig {
	return p.pie("Factions", totals, stats.AxisFaction)
}

// RaritiesConfig builds the rarities pie.
func (p *Presenter) RaritiesConfig(totals stats.Totals) PieConfig {
	return p.pie("Rarities", totals, stats.AxisRarity)
}

// TypesConfig builds the types pie. It uses the renderer's default palette.
func (p *Presenter) TypesConfig(totals stats.Totals) PieConfig {
	return p.pie("Types", totals, stats.AxisType)
}

func (p *Presenter) pie(title string, totals stats.Totals, axis stats.Axis) PieConfig {
	labels, values := AxisCounts(totals, axis)
	cfg := PieConfig{
		Title:       title,
		Labels:      labels,
		Values:      values,
		Layout:      p.layout,
		ShowLegend:  true,
		Animations:  false,
		Toolbar:     false,
		StrokeWidth: 0,
		Style:       p.style,
	}

	for _, s := range axisSlices(axis) {
		if s.color != "" {
			cfg.Colors = append(cfg.Colors, s.color)
		}
	}
	return cfg
}
