package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day, hour int) time.Time {
	return time.Date(2025, 7, day, hour, 0, 0, 0, time.Local)
}

// TestTableLastDay checks the observed-maximum rule used for window
// segmentation.
func TestTableLastDay(t *testing.T) {
	assert.Equal(t, 0, Table{}.LastDay())

	table := Table{
		{Timestamp: at(3, 10)},
		{Timestamp: at(28, 9)},
		{Timestamp: at(15, 12)},
	}
	assert.Equal(t, 28, table.LastDay())
}

// TestTableTimeRange checks first/last extraction on a sorted table.
func TestTableTimeRange(t *testing.T) {
	first, last := Table{}.TimeRange()
	assert.True(t, first.IsZero())
	assert.True(t, last.IsZero())

	table := Table{
		{Timestamp: at(1, 8)},
		{Timestamp: at(2, 8)},
		{Timestamp: at(3, 8)},
	}
	first, last = table.TimeRange()
	assert.Equal(t, at(1, 8), first)
	assert.Equal(t, at(3, 8), last)
}

// TestWindowContains checks the inclusive day-of-month membership.
func TestWindowContains(t *testing.T) {
	w := Window{DayStart: 11, DayEnd: 20, Label: "11-20"}

	assert.False(t, w.Contains(at(10, 23)))
	assert.True(t, w.Contains(at(11, 0)))
	assert.True(t, w.Contains(at(20, 23)))
	assert.False(t, w.Contains(at(21, 0)))
}

// TestTableFilterIndependence checks that Filter returns a copy rather
// than a view of the source table.
func TestTableFilterIndependence(t *testing.T) {
	table := Table{
		{Timestamp: at(5, 10), InWorker: 1},
		{Timestamp: at(15, 10), InWorker: 2},
	}

	subset := table.Filter(Window{DayStart: 1, DayEnd: 10})
	require.Len(t, subset, 1)

	subset[0].InWorker = 99
	assert.Equal(t, 1.0, table[0].InWorker)
}

// TestTimestampFormatParse checks the per-format layout fallback chain.
func TestTimestampFormatParse(t *testing.T) {
	auto := TimestampFormats[0]
	require.Equal(t, "auto", auto.Name)

	ts, err := auto.Parse("2025-07-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC), ts.UTC())

	ts, err = auto.Parse("2025-07-01 10:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 1, 10, 0, 0, 0, time.Local), ts)

	_, err = auto.Parse("2025/07/01 10:00")
	assert.Error(t, err)
}

// TestRunResultArtifactCount sums artifacts across windows.
func TestRunResultArtifactCount(t *testing.T) {
	result := RunResult{
		Windows: []WindowResult{
			{Artifacts: []Artifact{{Kind: InoutChart}, {Kind: PollenChart}}},
			{Skipped: true},
			{Artifacts: []Artifact{{Kind: InoutChart}}},
		},
	}
	assert.Equal(t, 3, result.ArtifactCount())
}
