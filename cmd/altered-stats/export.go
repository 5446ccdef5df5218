package main

import (
	"github.com/ramonehamilton/altered-companion/internal/config"
	"github.com/ramonehamilton/altered-companion/internal/export"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportFormat    string
	exportPath      string
	exportOverwrite bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the collection totals as JSON or CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		totals, err := loadTotals(cfg, logger)
		if err != nil {
			return err
		}

		exporter := export.NewExporter(export.Options{
			Format:     export.Format(cfg.Export.Format),
			FilePath:   cfg.Export.Path,
			PrettyJSON: cfg.Export.PrettyJSON,
			Overwrite:  cfg.Export.Overwrite,
		})
		if err := exporter.Export(totals); err != nil {
			return err
		}

		logger.Info("Exported totals", zap.String("path", cfg.Export.Path), zap.String("format", cfg.Export.Format))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Export format: json or csv (overrides [export] format)")
	exportCmd.Flags().StringVarP(&exportPath, "output", "o", "", "Export file path (overrides [export] path)")
	exportCmd.Flags().BoolVar(&exportOverwrite, "overwrite", false, "Replace an existing export file")
}

func applyExportFlags(cmd *cobra.Command, c *config.Config) {
	if cmd.Name() != "export" {
		return
	}
	if cmd.Flags().Changed("format") {
		c.Export.Format = exportFormat
	}
	if cmd.Flags().Changed("output") {
		c.Export.Path = exportPath
	}
	if cmd.Flags().Changed("overwrite") {
		c.Export.Overwrite = exportOverwrite
	}
}
