// Package parquet provides data structures and functions for exporting
// normalized observation tables to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/beemon/beemon/schema"
)

// ObservationRow maps one observation to the exported Parquet schema.
// Column names match the canonical CSV columns so the export loads
// cleanly into pandas/DuckDB next to the raw files.
type ObservationRow struct {
	// Timestamp is the sample instant (stored as TIMESTAMP with nanosecond precision)
	Timestamp time.Time `parquet:"timestamp,snappy"`

	InWorker  float64 `parquet:"in_worker,snappy"`
	OutWorker float64 `parquet:"out_worker,snappy"`
	InPollen  float64 `parquet:"in_pollen,snappy"`
	OutPollen float64 `parquet:"out_pollen,snappy"`
	InDrone   float64 `parquet:"in_drone,snappy"`
	OutDrone  float64 `parquet:"out_drone,snappy"`

	// PollenRate is nullable: an undefined ratio stays NULL in the
	// export instead of collapsing to zero.
	PollenRate *float64 `parquet:"pollen_rate,optional,snappy"`
}

// FromTable converts a normalized table into Parquet rows.
func FromTable(table schema.Table) []ObservationRow {
	rows := make([]ObservationRow, len(table))
	for i, obs := range table {
		rows[i] = ObservationRow{
			Timestamp:  obs.Timestamp,
			InWorker:   obs.InWorker,
			OutWorker:  obs.OutWorker,
			InPollen:   obs.InPollen,
			OutPollen:  obs.OutPollen,
			InDrone:    obs.InDrone,
			OutDrone:   obs.OutDrone,
			PollenRate: obs.PollenRate,
		}
	}
	return rows
}

// WriteObservationsParquet writes a normalized table to a Parquet file.
func WriteObservationsParquet(table schema.Table, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the ObservationRow struct tags.
	writer := parquet.NewGenericWriter[ObservationRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(FromTable(table)); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
