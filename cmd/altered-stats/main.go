package main

import (
	"fmt"
	"os"

	"github.com/ramonehamilton/altered-companion/internal/charts"
	"github.com/ramonehamilton/altered-companion/internal/config"
	"github.com/ramonehamilton/altered-companion/internal/stats"
	"github.com/ramonehamilton/altered-companion/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	cardsPath  string
	debugMode  bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "altered-stats",
	Short: "Collection statistics and charts for Altered cards",
	Long: `altered-stats reads the cards.json file written by the card fetcher,
counts the cards you own by faction, rarity and type, and renders the
counts as pie charts on a single HTML page.

Foiler cards are skipped unless [aggregate] include_foilers is set.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}

		logger, err = newLogger(cfg.App.DebugMode)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetVersion())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.toml (default ~/.altered-companion/config.toml)")
	rootCmd.PersistentFlags().StringVar(&cardsPath, "cards", "", "Path to cards.json (overrides [input] cards_path)")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "Enable debug logging")

	registerRenderFlags(rootCmd)
	registerRenderFlags(renderCmd)
	rootCmd.AddCommand(renderCmd, summaryCmd, exportCmd, configCmd, versionCmd)
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}

	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("cards") {
		c.Input.CardsPath = cardsPath
	}
	if cmd.Flags().Changed("debug") {
		c.App.DebugMode = debugMode
	}
	applyRenderFlags(cmd, c)
	applyExportFlags(cmd, c)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

func aggregateOptions(c *config.Config) stats.Options {
	return stats.Options{IncludeFoilers: c.Aggregate.IncludeFoilers}
}

func styleFromConfig(c *config.Config) charts.Style {
	style := charts.DefaultStyle()
	style.ForeColor = c.Style.ForeColor
	style.BackgroundColor = c.Style.BackgroundColor
	style.Theme = c.Style.Theme
	style.HideToolbar = c.Style.HideToolbar
	style.ShowDataLabels = c.Style.ShowDataLabels
	if c.Style.TooltipFormatter != "" {
		style.TooltipFormatter = c.Style.TooltipFormatter
	}
	return style
}

func layoutFromConfig(c *config.Config) charts.Layout {
	return charts.Layout{
		Width:          c.Chart.Width,
		TitleFontSize:  c.Chart.TitleFontSize,
		LegendPosition: c.Chart.LegendPosition,
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
