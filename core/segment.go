package core

import (
	"fmt"

	"github.com/beemon/beemon/schema"
)

// Windows returns the three day-of-month bands used for monthly charts.
// The last band ends at the maximum day actually observed, so short and
// partial months need no special casing.
func Windows(lastDay int) []schema.Window {
	return []schema.Window{
		{DayStart: 1, DayEnd: 10, Label: "01-10"},
		{DayStart: 11, DayEnd: 20, Label: "11-20"},
		{DayStart: 21, DayEnd: lastDay, Label: fmt.Sprintf("21-%02d", lastDay)},
	}
}

// WindowTable pairs a window with its filtered subset of rows.
type WindowTable struct {
	Window schema.Window
	Rows   schema.Table
}

// Segment partitions a normalized table into exactly three window
// subsets. Subsets are independent copies in row order; an empty subset
// is valid and signals the renderer to skip that window.
func Segment(table schema.Table) []WindowTable {
	windows := Windows(table.LastDay())
	segments := make([]WindowTable, 0, len(windows))
	for _, w := range windows {
		segments = append(segments, WindowTable{Window: w, Rows: table.Filter(w)})
	}
	return segments
}
