package cmd

import (
	"github.com/spf13/cobra"

	"github.com/beemon/beemon/core"
	"github.com/beemon/beemon/internal/contract"
)

// exportCmd writes the normalized observation table to Parquet.
var exportCmd = &cobra.Command{
	Use:   "export [csv-path]",
	Short: "Export the normalized observation table to a Parquet file.",
	Long: `Normalize one sensor export (aliases resolved, timestamps parsed, pollen
rate derived) and write the resulting table to a Parquet file for use in
pandas, DuckDB or other analytical tooling.

Examples:
  # Export the newest *_inout.csv under ./data
  beemon export --output-file observations.parquet

  # Export one specific file
  beemon export data/2025-07_inout.csv --output-file july.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: inputSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(cfg); err != nil {
			contract.LogFatal("Cannot export observations", err)
		}
	},
}
