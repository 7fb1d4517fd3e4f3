package render

import (
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	bandFill  = drawing.Color{R: 0xE9, G: 0xE9, B: 0xE9, A: 0xFF}
	gridColor = drawing.Color{R: 0xC9, G: 0xC9, B: 0xC9, A: 0xFF}
)

// band is one shaded interval of the alternating-day background.
type band struct {
	start time.Time
	end   time.Time
}

// dayBands computes the shaded intervals for the span [first, last].
// Calendar days alternate unshaded and shaded, starting unshaded on
// the first day present and toggling at each midnight after the first
// observed one; intervals are clipped to the span.
func dayBands(first, last time.Time) []band {
	var bands []band
	midnight := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, first.Location())
	for i := 0; ; i++ {
		dayStart := midnight.AddDate(0, 0, i)
		if dayStart.After(last) {
			break
		}
		if i%2 == 0 {
			continue
		}
		b := band{start: dayStart, end: dayStart.AddDate(0, 0, 1)}
		if b.start.Before(first) {
			b.start = first
		}
		if b.end.After(last) {
			b.end = last
		}
		if b.end.After(b.start) {
			bands = append(bands, b)
		}
	}
	return bands
}

// bandSeries paints the alternating-day background. It implements
// chart.Series so it participates in the series draw pass, where it is
// placed first and therefore sits beneath the grid and the data lines.
type bandSeries struct {
	bands []band
}

func (s bandSeries) GetName() string { return "" }
func (s bandSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (s bandSeries) GetStyle() chart.Style { return chart.Style{FillColor: bandFill} }
func (s bandSeries) Validate() error { return nil }

func (s bandSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, _ chart.Range, _ chart.Style) {
	r.SetFillColor(bandFill)
	for _, b := range s.bands {
		x0 := canvasBox.Left + xrange.Translate(timeValue(b.start))
		x1 := canvasBox.Left + xrange.Translate(timeValue(b.end))
		if x1 <= x0 {
			continue
		}
		r.MoveTo(x0, canvasBox.Top)
		r.LineTo(x1, canvasBox.Top)
		r.LineTo(x1, canvasBox.Bottom)
		r.LineTo(x0, canvasBox.Bottom)
		r.Close()
		r.Fill()
	}
}

// gridSeries paints vertical grid lines at the tick positions. Drawing
// the grid as a series keeps it above the day bands but below the data
// lines; go-chart's own axis grid would render before the bands and be
// painted over.
type gridSeries struct {
	ticks []chart.Tick
}

func (s gridSeries) GetName() string { return "" }
func (s gridSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (s gridSeries) GetStyle() chart.Style { return chart.Style{StrokeColor: gridColor} }
func (s gridSeries) Validate() error { return nil }

func (s gridSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, _ chart.Range, _ chart.Style) {
	r.SetStrokeColor(gridColor)
	r.SetStrokeWidth(1.0)
	for _, tick := range s.ticks {
		x := canvasBox.Left + xrange.Translate(tick.Value)
		if x < canvasBox.Left || x > canvasBox.Right {
			continue
		}
		r.MoveTo(x, canvasBox.Top)
		r.LineTo(x, canvasBox.Bottom)
		r.Stroke()
	}
}
