// Package render draws the per-window chart artifacts with go-chart.
//
// Every chart is a pure function of (window subset, label): identical
// input renders identical PNG bytes. Draw order inside the canvas is
// day bands, then the time grid, then the data series, so the
// alternating-day shading always sits beneath the lines.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/beemon/beemon/schema"
)

// Chart dimensions in pixels. The ratio chart is deliberately shorter,
// mirroring the narrower figure of the original monthly reports.
const (
	chartWidth    = 1320
	trafficHeight = 660
	pollenHeight  = 440
)

const strokeWidth = 1.5

// Caste colors shared by the in/out series pairs, plus the ratio color.
var (
	workerColor = drawing.Color{R: 0x1F, G: 0x77, B: 0xB4, A: 0xFF}
	pollenColor = drawing.Color{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF}
	droneColor  = drawing.Color{R: 0xD6, G: 0x27, B: 0x28, A: 0xFF}
	rateColor   = drawing.Color{R: 0x2C, G: 0xA0, B: 0x2C, A: 0xFF}
)

// ErrNoSeries reports a window whose subset yields nothing renderable,
// e.g. a ratio chart where every row has an undefined pollen rate.
// Callers skip the artifact instead of writing an empty chart.
var ErrNoSeries = errors.New("no renderable series data")

// Render draws one chart kind for a window subset and returns the PNG
// bytes.
func Render(kind schema.ChartKind, rows schema.Table, label string) ([]byte, error) {
	switch kind {
	case schema.InoutChart:
		return Traffic(rows, label)
	case schema.PollenChart:
		return PollenRate(rows, label)
	default:
		return nil, fmt.Errorf("unknown chart kind: %s", kind)
	}
}

// Traffic renders the six-series entrance traffic chart: one in/out
// pair per caste, direction distinguished by line style.
func Traffic(rows schema.Table, label string) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrNoSeries
	}

	times := make([]time.Time, len(rows))
	for i, obs := range rows {
		times[i] = obs.Timestamp
	}
	pick := func(get func(schema.Observation) float64) []float64 {
		ys := make([]float64, len(rows))
		for i, obs := range rows {
			ys[i] = get(obs)
		}
		return ys
	}

	series := []chart.Series{
		chart.TimeSeries{Name: "in_worker", XValues: times, YValues: pick(func(o schema.Observation) float64 { return o.InWorker }), Style: solid(workerColor)},
		chart.TimeSeries{Name: "out_worker", XValues: times, YValues: pick(func(o schema.Observation) float64 { return o.OutWorker }), Style: dashed(workerColor)},
		chart.TimeSeries{Name: "in_pollen", XValues: times, YValues: pick(func(o schema.Observation) float64 { return o.InPollen }), Style: solid(pollenColor)},
		chart.TimeSeries{Name: "out_pollen", XValues: times, YValues: pick(func(o schema.Observation) float64 { return o.OutPollen }), Style: dashed(pollenColor)},
		chart.TimeSeries{Name: "in_drone", XValues: times, YValues: pick(func(o schema.Observation) float64 { return o.InDrone }), Style: solid(droneColor)},
		chart.TimeSeries{Name: "out_drone", XValues: times, YValues: pick(func(o schema.Observation) float64 { return o.OutDrone }), Style: dashed(droneColor)},
	}

	title := fmt.Sprintf("Days %s: entrance traffic by caste", label)
	yaxis := chart.YAxis{Name: "Count"}
	return renderPNG(title, trafficHeight, yaxis, rows, series)
}

// PollenRate renders the single-series foraging ratio chart. Rows with
// an undefined ratio are dropped from the series, leaving gaps rather
// than fake zeros.
func PollenRate(rows schema.Table, label string) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrNoSeries
	}

	var times []time.Time
	var rates []float64
	for _, obs := range rows {
		if obs.PollenRate == nil {
			continue
		}
		times = append(times, obs.Timestamp)
		rates = append(rates, *obs.PollenRate)
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("%w: pollen rate undefined for all %d rows", ErrNoSeries, len(rows))
	}

	series := []chart.Series{
		chart.TimeSeries{Name: "pollen_rate", XValues: times, YValues: rates, Style: solid(rateColor)},
	}

	title := fmt.Sprintf("Days %s: pollen foraging ratio", label)
	yaxis := chart.YAxis{Name: "Pollen rate", Range: &chart.ContinuousRange{Min: 0, Max: 1}}
	return renderPNG(title, pollenHeight, yaxis, rows, series)
}

func solid(c drawing.Color) chart.Style {
	return chart.Style{StrokeColor: c, StrokeWidth: strokeWidth}
}

func dashed(c drawing.Color) chart.Style {
	return chart.Style{StrokeColor: c, StrokeWidth: strokeWidth, StrokeDashArray: []float64{6, 4}}
}

// renderPNG assembles the shared chart scaffolding (time axis, day
// bands, grid, legend) around the given data series and encodes it.
func renderPNG(title string, height int, yaxis chart.YAxis, rows schema.Table, data []chart.Series) ([]byte, error) {
	first := rows[0].Timestamp
	last := rows[len(rows)-1].Timestamp
	if first.Equal(last) {
		// Pad a degenerate span so the x range never collapses.
		first = first.Add(-30 * time.Minute)
		last = last.Add(30 * time.Minute)
	}

	ticks := timeTicks(first, last)
	xaxis := chart.XAxis{
		Name:      "Time",
		Ticks:     ticks,
		Range:     &chart.ContinuousRange{Min: timeValue(first), Max: timeValue(last)},
		TickStyle: chart.Style{TextRotationDegrees: 45},
	}

	series := make([]chart.Series, 0, len(data)+2)
	series = append(series, bandSeries{bands: dayBands(first, last)})
	series = append(series, gridSeries{ticks: ticks})
	series = append(series, data...)

	ch := chart.Chart{
		Title:      title,
		Width:      chartWidth,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 24}},
		XAxis:      xaxis,
		YAxis:      yaxis,
		Series:     series,
	}

	// The legend must list data series only, not the band/grid layers.
	legendSrc := ch
	legendSrc.Series = data
	ch.Elements = []chart.Renderable{chart.Legend(&legendSrc)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render png: %w", err)
	}
	return buf.Bytes(), nil
}

// timeValue converts a timestamp to the float domain go-chart uses for
// time axes.
func timeValue(t time.Time) float64 {
	return float64(chart.TimeToFloat64(t))
}
