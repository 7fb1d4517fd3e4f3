package cmd

import (
	"github.com/spf13/cobra"

	"github.com/beemon/beemon/core"
	"github.com/beemon/beemon/internal/contract"
)

// chartsCmd runs the full analysis pipeline for one sensor export.
var chartsCmd = &cobra.Command{
	Use:   "charts [csv-path]",
	Short: "Render traffic and pollen charts for the latest sensor export.",
	Long: `Locate the newest hive entrance CSV export, normalize it, split the
observations into calendar windows (days 1-10, 11-20, 21-end) and render
two PNG charts per window:

- inout: worker/pollen/drone traffic, solid for inbound, dashed for outbound
- pollen: the pollen carry ratio among inbound bees

Windows without data are skipped with a warning; the remaining charts are
still produced.

Examples:
  # Analyze the newest *_inout.csv under ./data
  beemon charts

  # Analyze one specific export
  beemon charts data/2025-07_inout.csv

  # Machine-readable run summary
  beemon charts --output json --output-file run.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: inputSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCharts(cfg); err != nil {
			contract.LogFatal("Cannot render charts", err)
		}
	},
}
