package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beemon/beemon/schema"
)

func ratePtr(v float64) *float64 { return &v }

func sampleTable() schema.Table {
	base := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	return schema.Table{
		{
			Timestamp: base,
			InWorker:  12, OutWorker: 10,
			InPollen: 3, OutPollen: 1,
			InDrone: 2, OutDrone: 1,
			PollenRate: ratePtr(3.0 / 17.0),
		},
		{
			Timestamp: base.Add(time.Hour),
			// Zero inbound traffic, rate undefined.
			OutWorker: 4, OutPollen: 1,
		},
	}
}

func TestObservationRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	rowSchema := parquet.SchemaOf(new(ObservationRow))
	require.NotNil(t, rowSchema)

	expectedColumns := []string{
		"timestamp",
		"in_worker",
		"out_worker",
		"in_pollen",
		"out_pollen",
		"in_drone",
		"out_drone",
		"pollen_rate",
	}

	for _, colName := range expectedColumns {
		col, ok := rowSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteObservationsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "observations.parquet")

	table := sampleTable()
	require.NoError(t, WriteObservationsParquet(table, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[ObservationRow](file)
	defer func() { _ = reader.Close() }()

	readData := make([]ObservationRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	require.Equal(t, len(table), n, "Should read all records")

	for i := range table {
		assert.WithinDuration(t, table[i].Timestamp, readData[i].Timestamp, time.Nanosecond)
		assert.Equal(t, table[i].InWorker, readData[i].InWorker)
		assert.Equal(t, table[i].OutDrone, readData[i].OutDrone)

		// Nullable ratio must survive the round trip.
		if table[i].PollenRate == nil {
			assert.Nil(t, readData[i].PollenRate)
		} else {
			require.NotNil(t, readData[i].PollenRate)
			assert.InDelta(t, *table[i].PollenRate, *readData[i].PollenRate, 1e-12)
		}
	}
}
