package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Page is a Renderer that collects pies on a single HTML page.
type Page struct {
	page    *components.Page
	mounted []string
}

// NewPage creates an empty page with the given title.
func NewPage(title string) *Page {
	page := components.NewPage()
	page.PageTitle = title
	page.SetLayout(components.PageFlexLayout)

	return &Page{page: page}
}

// Render adds a pie mounted at target. The target is a selector such as
// "#factions"; the leading '#' is dropped to form the element id.
func (p *Page) Render(target string, cfg PieConfig) error {
	id := strings.TrimPrefix(target, "#")
	if id == "" {
		return fmt.Errorf("invalid chart target %q", target)
	}
	for _, m := range p.mounted {
		if m == id {
			return fmt.Errorf("chart target %q already mounted", target)
		}
	}
	if len(cfg.Values) != len(cfg.Labels) {
		return fmt.Errorf("chart %q has %d values for %d labels", cfg.Title, len(cfg.Values), len(cfg.Labels))
	}

	p.page.AddCharts(newPie(id, cfg))
	p.mounted = append(p.mounted, id)
	return nil
}

// Mounted returns the element ids rendered so far, in order.
func (p *Page) Mounted() []string {
	return append([]string(nil), p.mounted...)
}

// Write renders the page HTML to w.
func (p *Page) Write(w io.Writer) error {
	if err := p.page.Render(w); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// Save writes the page HTML to outputPath, creating parent directories.
func (p *Page) Save(outputPath string) (err error) {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return p.Write(f)
}

func newPie(id string, cfg PieConfig) *charts.Pie {
	pie := charts.NewPie()
	width := fmt.Sprintf("%dpx", cfg.Layout.Width)

	global := []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			ChartID:         id,
			Width:           width,
			Height:          width,
			Theme:           cfg.Style.Theme,
			BackgroundColor: cfg.Style.BackgroundColor,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: cfg.Title,
			Left:  "center",
			TitleStyle: &opts.TextStyle{
				Color:    cfg.Style.ForeColor,
				FontSize: cfg.Layout.TitleFontSize,
			},
		}),
		charts.WithLegendOpts(legendOpts(cfg)),
		charts.WithTooltipOpts(tooltipOpts(cfg.Style)),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(cfg.Toolbar && !cfg.Style.HideToolbar),
		}),
		charts.WithAnimation(cfg.Animations),
	}
	if len(cfg.Colors) > 0 {
		global = append(global, charts.WithColorsOpts(opts.Colors(cfg.Colors)))
	}
	pie.SetGlobalOptions(global...)

	data := make([]opts.PieData, len(cfg.Labels))
	for i, label := range cfg.Labels {
		data[i] = opts.PieData{Name: label, Value: cfg.Values[i]}

		// The series color option is only emitted for the white theme,
		// so palettes are set per slice.
		if i < len(cfg.Colors) || cfg.StrokeWidth == 0 {
			data[i].ItemStyle = &opts.ItemStyle{}
		}
		if i < len(cfg.Colors) {
			data[i].ItemStyle.Color = cfg.Colors[i]
		}
		if cfg.StrokeWidth == 0 {
			data[i].ItemStyle.BorderColor = "transparent"
		}
	}

	pie.AddSeries(cfg.Title, data).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(cfg.Style.ShowDataLabels),
			}),
			charts.WithPieChartOpts(opts.PieChart{
				Radius: "60%",
			}),
		)

	return pie
}

func tooltipOpts(style Style) opts.Tooltip {
	tooltip := opts.Tooltip{
		Show:    opts.Bool(true),
		Trigger: "item",
	}
	if style.TooltipFormatter != "" {
		tooltip.Formatter = opts.FuncOpts(style.TooltipFormatter)
	}
	return tooltip
}

func legendOpts(cfg PieConfig) opts.Legend {
	legend := opts.Legend{
		Show:      opts.Bool(cfg.ShowLegend),
		TextStyle: &opts.TextStyle{Color: cfg.Style.ForeColor},
	}
	switch cfg.Layout.LegendPosition {
	case "top":
		legend.Top = "30"
	case "left":
		legend.Left = "0"
		legend.Orient = "vertical"
	case "right":
		legend.Right = "0"
		legend.Orient = "vertical"
	default:
		legend.Bottom = "0"
	}
	return legend
}
