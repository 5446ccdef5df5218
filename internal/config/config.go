// Package config loads the TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	// Collection input
	Input InputConfig `toml:"input"`

	// Rendered chart page
	Output OutputConfig `toml:"output"`

	// Aggregation pass
	Aggregate AggregateConfig `toml:"aggregate"`

	// Shared chart style
	Style StyleConfig `toml:"style"`

	// Pie sizing
	Chart ChartConfig `toml:"chart"`

	// File watching
	Watch WatchConfig `toml:"watch"`

	// Totals export
	Export ExportConfig `toml:"export"`

	// Application configuration
	App AppConfig `toml:"app"`
}

// InputConfig locates the collection file.
type InputConfig struct {
	CardsPath string `toml:"cards_path"` // cards.json written by the card fetcher
}

// OutputConfig controls the chart page.
type OutputConfig struct {
	ChartPath   string `toml:"chart_path"`   // HTML output file
	PageTitle   string `toml:"page_title"`   // Browser page title
	OpenBrowser bool   `toml:"open_browser"` // Open the page after rendering
}

// AggregateConfig controls the aggregation pass.
type AggregateConfig struct {
	IncludeFoilers bool `toml:"include_foilers"`
}

// StyleConfig mirrors charts.Style.
type StyleConfig struct {
	ForeColor        string `toml:"fore_color"`
	BackgroundColor  string `toml:"background_color"`
	Theme            string `toml:"theme"`
	HideToolbar      bool   `toml:"hide_toolbar"`
	ShowDataLabels   bool   `toml:"show_data_labels"`
	TooltipFormatter string `toml:"tooltip_formatter"` // empty keeps the time-of-day formatter
}

// ChartConfig sizes the pies.
type ChartConfig struct {
	Width          int    `toml:"width"`           // Pixels
	TitleFontSize  int    `toml:"title_font_size"` // Pixels
	LegendPosition string `toml:"legend_position"` // top, bottom, left, right
}

// WatchConfig contains file watching settings.
type WatchConfig struct {
	Debounce string `toml:"debounce"` // e.g. "500ms"
}

// ExportConfig contains totals export settings.
type ExportConfig struct {
	Format     string `toml:"format"` // json or csv
	Path       string `toml:"path"`
	PrettyJSON bool   `toml:"pretty_json"`
	Overwrite  bool   `toml:"overwrite"`
}

// AppConfig contains general application settings.
type AppConfig struct {
	DebugMode bool `toml:"debug_mode"` // Enable debug logging
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			CardsPath: filepath.Join("results", "cards.json"),
		},
		Output: OutputConfig{
			ChartPath:   filepath.Join("results", "collection.html"),
			PageTitle:   "My Altered collection",
			OpenBrowser: false,
		},
		Aggregate: AggregateConfig{
			IncludeFoilers: false,
		},
		Style: StyleConfig{
			ForeColor:       "#fff",
			BackgroundColor: "#1b213b",
			Theme:           "dark",
			HideToolbar:     true,
			ShowDataLabels:  false,
		},
		Chart: ChartConfig{
			Width:          380,
			TitleFontSize:  26,
			LegendPosition: "bottom",
		},
		Watch: WatchConfig{
			Debounce: "500ms",
		},
		Export: ExportConfig{
			Format:     "json",
			Path:       filepath.Join("results", "totals.json"),
			PrettyJSON: true,
			Overwrite:  true,
		},
		App: AppConfig{
			DebugMode: false,
		},
	}
}

// DefaultPath returns ~/.altered-companion/config.toml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".altered-companion", "config.toml"), nil
}

// Load loads the configuration from path. Returns the default config if the
// file doesn't exist. Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return config, nil
}

// Save writes the configuration to path, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Input.CardsPath == "" {
		return fmt.Errorf("cards path cannot be empty")
	}

	if _, err := time.ParseDuration(c.Watch.Debounce); err != nil {
		return fmt.Errorf("invalid watch debounce %q: %w", c.Watch.Debounce, err)
	}

	if c.Chart.Width <= 0 {
		return fmt.Errorf("chart width must be positive: %d", c.Chart.Width)
	}
	if c.Chart.TitleFontSize <= 0 {
		return fmt.Errorf("title font size must be positive: %d", c.Chart.TitleFontSize)
	}

	switch c.Chart.LegendPosition {
	case "top", "bottom", "left", "right":
	default:
		return fmt.Errorf("invalid legend position %q", c.Chart.LegendPosition)
	}

	switch c.Export.Format {
	case "json", "csv":
	default:
		return fmt.Errorf("invalid export format %q", c.Export.Format)
	}

	return nil
}

// GetWatchDebounce returns the watch debounce as a duration.
func (c *Config) GetWatchDebounce() (time.Duration, error) {
	return time.ParseDuration(c.Watch.Debounce)
}
