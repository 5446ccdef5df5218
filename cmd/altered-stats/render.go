package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ramonehamilton/altered-companion/internal/cards"
	"github.com/ramonehamilton/altered-companion/internal/charts"
	"github.com/ramonehamilton/altered-companion/internal/config"
	"github.com/ramonehamilton/altered-companion/internal/stats"
	"github.com/ramonehamilton/altered-companion/internal/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outputPath  string
	openBrowser bool
	watchMode   bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the faction, rarity and type charts",
	Long: `Aggregates cards.json and writes an HTML page with three pie charts
mounted at #factions, #rarities and #types.

With --watch the page is rebuilt from scratch every time cards.json changes.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func registerRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "HTML output path (overrides [output] chart_path)")
	cmd.Flags().BoolVar(&openBrowser, "open", false, "Open the page in the default browser")
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Re-render when the cards file changes")
}

func applyRenderFlags(cmd *cobra.Command, c *config.Config) {
	if cmd.HasParent() && cmd.Name() != "render" {
		return
	}
	if cmd.Flags().Changed("output") {
		c.Output.ChartPath = outputPath
	}
	if cmd.Flags().Changed("open") {
		c.Output.OpenBrowser = openBrowser
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	if err := renderCollection(cfg, logger); err != nil {
		return err
	}

	if cfg.Output.OpenBrowser {
		if err := charts.OpenInBrowser(cfg.Output.ChartPath); err != nil {
			logger.Warn("Could not open browser", zap.Error(err))
		}
	}

	if !watchMode {
		return nil
	}

	debounce, err := cfg.GetWatchDebounce()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := watch.New(cfg.Input.CardsPath, debounce, logger)
	return w.Run(ctx, func() error {
		return renderCollection(cfg, logger)
	})
}

// renderCollection runs one full pass: load, aggregate, present, save.
func renderCollection(c *config.Config, logger *zap.Logger) error {
	totals, err := loadTotals(c, logger)
	if err != nil {
		return err
	}

	page := charts.NewPage(c.Output.PageTitle)
	presenter := charts.NewPresenter(page, styleFromConfig(c), layoutFromConfig(c))
	if err := presenter.Present(totals, charts.DefaultTargets()); err != nil {
		return err
	}

	if err := page.Save(c.Output.ChartPath); err != nil {
		return fmt.Errorf("save chart page: %w", err)
	}

	logger.Info("Rendered collection charts",
		zap.String("path", c.Output.ChartPath),
		zap.Strings("charts", page.Mounted()),
	)
	return nil
}

func loadTotals(c *config.Config, logger *zap.Logger) (stats.Totals, error) {
	collection, err := cards.Load(c.Input.CardsPath)
	if err != nil {
		return stats.Totals{}, err
	}
	logger.Debug("Loaded collection", zap.Int("cards", len(collection)), zap.String("path", c.Input.CardsPath))

	return stats.NewAggregator(aggregateOptions(c), logger).Aggregate(collection), nil
}
