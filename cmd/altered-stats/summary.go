package main

import (
	"fmt"
	"io"

	"github.com/ramonehamilton/altered-companion/internal/charts"
	"github.com/ramonehamilton/altered-companion/internal/stats"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the collection totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		totals, err := loadTotals(cfg, logger)
		if err != nil {
			return err
		}
		displaySummary(cmd.OutOrStdout(), totals)
		return nil
	},
}

// displaySummary prints the totals using the chart labels.
func displaySummary(w io.Writer, totals stats.Totals) {
	fmt.Fprintln(w, "Collection Summary")
	fmt.Fprintln(w, "==================")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Total Cards:      %d\n", totals.CollectionCount)
	fmt.Fprintf(w, "  Known Cards:      %d\n", totals.KnownCardsCount)
	fmt.Fprintf(w, "  Different Cards:  %d\n", totals.DifferentCardsCount)
	fmt.Fprintln(w)

	labels, values := charts.AxisCounts(totals, stats.AxisFaction)
	displayAxis(w, "By Faction:", labels, values, totals.Factions.Unclassified())

	labels, values = charts.AxisCounts(totals, stats.AxisRarity)
	displayAxis(w, "By Rarity:", labels, values, totals.Rarities.Unclassified())

	labels, values = charts.AxisCounts(totals, stats.AxisType)
	labels = append(labels, "Foiler")
	values = append(values, totals.FoilerCount())
	displayAxis(w, "By Type:", labels, values, totals.UnknownTypeCount())
}

func displayAxis(w io.Writer, heading string, labels []string, values []int, unclassified int) {
	fmt.Fprintln(w, heading)
	for i, label := range labels {
		fmt.Fprintf(w, "  %s: %d\n", label, values[i])
	}
	if unclassified > 0 {
		fmt.Fprintf(w, "  Other: %d\n", unclassified)
	}
	fmt.Fprintln(w)
}
