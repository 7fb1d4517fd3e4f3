package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beemon/beemon/schema"
)

func obsAt(ts time.Time) schema.Observation {
	return schema.Observation{Timestamp: ts}
}

// TestWindowsLabels checks the last-window label for months of
// different lengths.
func TestWindowsLabels(t *testing.T) {
	tests := []struct {
		name    string
		lastDay int
		want    string
	}{
		{name: "february", lastDay: 28, want: "21-28"},
		{name: "leap february", lastDay: 29, want: "21-29"},
		{name: "thirty days", lastDay: 30, want: "21-30"},
		{name: "thirty one days", lastDay: 31, want: "21-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows := Windows(tt.lastDay)
			require.Len(t, windows, 3)
			assert.Equal(t, "01-10", windows[0].Label)
			assert.Equal(t, "11-20", windows[1].Label)
			assert.Equal(t, tt.want, windows[2].Label)
			assert.Equal(t, tt.lastDay, windows[2].DayEnd)
		})
	}
}

// TestSegmentBoundaries verifies that window membership is inclusive on
// both ends and that the boundary between days 10 and 11 is exact.
func TestSegmentBoundaries(t *testing.T) {
	table := schema.Table{
		obsAt(time.Date(2025, 7, 1, 0, 0, 0, 0, time.Local)),
		obsAt(time.Date(2025, 7, 10, 23, 59, 0, 0, time.Local)),
		obsAt(time.Date(2025, 7, 11, 0, 0, 0, 0, time.Local)),
		obsAt(time.Date(2025, 7, 20, 23, 59, 0, 0, time.Local)),
		obsAt(time.Date(2025, 7, 21, 0, 0, 0, 0, time.Local)),
		obsAt(time.Date(2025, 7, 31, 12, 0, 0, 0, time.Local)),
	}

	segments := Segment(table)
	require.Len(t, segments, 3)

	assert.Len(t, segments[0].Rows, 2)
	assert.Len(t, segments[1].Rows, 2)
	assert.Len(t, segments[2].Rows, 2)
	assert.Equal(t, "21-31", segments[2].Window.Label)
}

// TestSegmentEmptyWindows checks that windows without data come back
// empty instead of being dropped.
func TestSegmentEmptyWindows(t *testing.T) {
	table := schema.Table{
		obsAt(time.Date(2025, 7, 2, 9, 0, 0, 0, time.Local)),
		obsAt(time.Date(2025, 7, 5, 9, 0, 0, 0, time.Local)),
	}

	segments := Segment(table)
	require.Len(t, segments, 3)

	assert.Len(t, segments[0].Rows, 2)
	assert.Empty(t, segments[1].Rows)
	assert.Empty(t, segments[2].Rows)
	// Data ends on day 5, so the last window is degenerate.
	assert.Equal(t, 5, segments[2].Window.DayEnd)
}

// TestSegmentEmptyTable checks the zero-row edge case.
func TestSegmentEmptyTable(t *testing.T) {
	segments := Segment(schema.Table{})
	require.Len(t, segments, 3)
	for _, s := range segments {
		assert.Empty(t, s.Rows)
	}
}
