package core

import (
	"fmt"

	"github.com/beemon/beemon/internal/contract"
	"github.com/beemon/beemon/internal/parquet"
)

// ExecuteExport normalizes one sensor export and writes the table to a
// Parquet file for downstream analysis.
func ExecuteExport(cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("an output file is required for Parquet export (use --output-file)")
	}

	input := cfg.InputFile
	if input == "" {
		located, err := LatestInputFile(cfg.DataDir, cfg.InputPattern)
		if err != nil {
			return err
		}
		input = located
	}

	table, format, err := LoadTable(input)
	if err != nil {
		return err
	}

	if err := parquet.WriteObservationsParquet(table, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Printf("Exported %d rows from %s (timestamp format %q) to %s\n",
		len(table), input, format, cfg.OutputFile)
	return nil
}
