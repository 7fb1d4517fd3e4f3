// Package schema defines the observation table, window types and shared
// constants for the beemon analysis pipeline.
package schema

import "time"

// Observation is one sampled instant of entrance-sensor counts.
// Counts are integers in practice but tolerated as floats, matching
// the exports produced by older sensor firmware.
type Observation struct {
	Timestamp time.Time
	InWorker  float64
	OutWorker float64
	InPollen  float64
	OutPollen float64
	InDrone   float64
	OutDrone  float64

	// PollenRate is the fraction of inbound pollen-carrying workers
	// among all inbound traffic. It is nil when undefined for the row:
	// zero inbound traffic and no value supplied by the export.
	PollenRate *float64
}

// Table is an observation table, ordered ascending by timestamp once
// normalization has run.
type Table []Observation

// LastDay returns the maximum day-of-month observed in the table,
// or 0 for an empty table. Window segmentation uses this instead of a
// calendar constant so 28/29/30/31-day and partial months all work.
func (t Table) LastDay() int {
	last := 0
	for _, obs := range t {
		if d := obs.Timestamp.Day(); d > last {
			last = d
		}
	}
	return last
}

// TimeRange returns the first and last timestamps of the table.
// Both are zero for an empty table.
func (t Table) TimeRange() (time.Time, time.Time) {
	if len(t) == 0 {
		return time.Time{}, time.Time{}
	}
	return t[0].Timestamp, t[len(t)-1].Timestamp
}

// Window is a contiguous day-of-month band, inclusive on both ends.
type Window struct {
	DayStart int    `json:"day_start"`
	DayEnd   int    `json:"day_end"`
	Label    string `json:"label"`
}

// Contains reports whether the timestamp's day-of-month falls inside
// the window.
func (w Window) Contains(ts time.Time) bool {
	d := ts.Day()
	return d >= w.DayStart && d <= w.DayEnd
}

// Filter returns the subset of the table that falls inside the window,
// preserving row order. The result is an independent copy; an empty
// result is valid and simply has length zero.
func (t Table) Filter(w Window) Table {
	out := make(Table, 0, len(t))
	for _, obs := range t {
		if w.Contains(obs.Timestamp) {
			out = append(out, obs)
		}
	}
	return out
}
