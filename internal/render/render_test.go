package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beemon/beemon/schema"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func ratePtr(v float64) *float64 { return &v }

func sampleRows() schema.Table {
	base := time.Date(2025, 7, 3, 8, 0, 0, 0, time.Local)
	rows := make(schema.Table, 0, 12)
	for i := 0; i < 12; i++ {
		rows = append(rows, schema.Observation{
			Timestamp:  base.Add(time.Duration(i) * 4 * time.Hour),
			InWorker:   float64(10 + i),
			OutWorker:  float64(9 + i),
			InPollen:   float64(2 + i%3),
			OutPollen:  1,
			InDrone:    1,
			PollenRate: ratePtr(0.2 + float64(i%3)*0.1),
		})
	}
	return rows
}

// TestRenderKinds checks that both chart kinds produce PNG output and
// that an unknown kind is rejected.
func TestRenderKinds(t *testing.T) {
	rows := sampleRows()

	for _, kind := range schema.AllChartKinds {
		png, err := Render(kind, rows, "01-10")
		require.NoError(t, err, "kind %s", kind)
		require.Greater(t, len(png), 4)
		assert.Equal(t, pngMagic, png[:4])
	}

	_, err := Render(schema.ChartKind("bogus"), rows, "01-10")
	require.Error(t, err)
}

// TestRenderDeterministic checks that the same rows render to the same
// bytes.
func TestRenderDeterministic(t *testing.T) {
	rows := sampleRows()

	a, err := Traffic(rows, "01-10")
	require.NoError(t, err)
	b, err := Traffic(rows, "01-10")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestRenderEmptyRows checks the no-data sentinel for both kinds.
func TestRenderEmptyRows(t *testing.T) {
	_, err := Traffic(schema.Table{}, "11-20")
	assert.ErrorIs(t, err, ErrNoSeries)

	_, err = PollenRate(schema.Table{}, "11-20")
	assert.ErrorIs(t, err, ErrNoSeries)
}

// TestPollenRateAllUndefined checks that a window whose rows all have an
// undefined ratio is a soft skip, not a broken chart.
func TestPollenRateAllUndefined(t *testing.T) {
	rows := sampleRows()
	for i := range rows {
		rows[i].PollenRate = nil
	}

	_, err := PollenRate(rows, "01-10")
	assert.ErrorIs(t, err, ErrNoSeries)
}

// TestPollenRateSkipsUndefinedRows checks that rows with a nil ratio
// are dropped while the rest still renders.
func TestPollenRateSkipsUndefinedRows(t *testing.T) {
	rows := sampleRows()
	rows[0].PollenRate = nil
	rows[5].PollenRate = nil

	png, err := PollenRate(rows, "01-10")
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:4])
}

// TestRenderSinglePoint checks the degenerate one-row window.
func TestRenderSinglePoint(t *testing.T) {
	rows := sampleRows()[:1]

	png, err := Traffic(rows, "21-21")
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:4])
}
