// Package charts builds and renders the collection pie charts.
package charts

// Style is the look shared by every chart on the page. It is applied once
// when the presenter is built.
type Style struct {
	ForeColor        string // titles and legend text
	BackgroundColor  string
	Theme            string // go-echarts theme name
	HideToolbar      bool
	ShowDataLabels   bool
	TooltipFormatter string // JavaScript function source
}

// timeOfDayFormatter prefixes each tooltip with the current time of day.
const timeOfDayFormatter = `function (params) {
	var now = new Date().toTimeString().slice(0, 8);
	return now + '<br/>' + params.marker + params.name + ': ' + params.value + ' (' + params.percent + '%)';
}`

// DefaultStyle returns the dark style used by the collection page.
func DefaultStyle() Style {
	return Style{
		ForeColor:        "#fff",
		BackgroundColor:  "#1b213b",
		Theme:            "dark",
		HideToolbar:      true,
		ShowDataLabels:   false,
		TooltipFormatter: timeOfDayFormatter,
	}
}

// Layout holds the sizing shared by the three pies.
type Layout struct {
	Width          int // pixels
	TitleFontSize  int // pixels
	LegendPosition string
}

// DefaultLayout returns the default pie layout.
func DefaultLayout() Layout {
	return Layout{
		Width:          380,
		TitleFontSize:  26, // 20pt
		LegendPosition: "bottom",
	}
}

// PieConfig is the declarative description of one pie chart.
type PieConfig struct {
	Title  string
	Labels []string
	Values []int
	// Colors is matched positionally to Labels. Empty uses the renderer's palette.
	Colors []string

	Layout      Layout
	ShowLegend  bool
	Animations  bool
	Toolbar     bool
	StrokeWidth int

	Style Style
}

// Renderer mounts a pie chart at a target such as "#factions".
type Renderer interface {
	Render(target string, cfg PieConfig) error
}
