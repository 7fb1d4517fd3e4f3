package render

import (
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
)

const (
	tickInterval    = 6 * time.Hour
	tickLabelFormat = "01-02 15:04"
)

// timeTicks returns ticks at fixed six-hour intervals aligned to the
// local calendar day of the span start. The span endpoints are always
// included so the axis range stays fully bracketed even for spans
// shorter than one interval.
func timeTicks(first, last time.Time) []chart.Tick {
	ticks := []chart.Tick{{Value: timeValue(first), Label: first.Format(tickLabelFormat)}}

	midnight := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, first.Location())
	t := midnight
	for !t.After(first) {
		t = t.Add(tickInterval)
	}
	for t.Before(last) {
		ticks = append(ticks, chart.Tick{Value: timeValue(t), Label: t.Format(tickLabelFormat)})
		t = t.Add(tickInterval)
	}

	ticks = append(ticks, chart.Tick{Value: timeValue(last), Label: last.Format(tickLabelFormat)})
	return ticks
}
