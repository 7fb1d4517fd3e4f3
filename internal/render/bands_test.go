package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDayBandsAlternation checks that every second calendar day of the
// span is shaded, starting unshaded on the first day.
func TestDayBandsAlternation(t *testing.T) {
	first := time.Date(2025, 7, 1, 6, 0, 0, 0, time.Local)
	last := time.Date(2025, 7, 5, 18, 0, 0, 0, time.Local)

	bands := dayBands(first, last)
	require.Len(t, bands, 2)

	// Days 2 and 4 are shaded, full midnight-to-midnight intervals.
	assert.Equal(t, time.Date(2025, 7, 2, 0, 0, 0, 0, time.Local), bands[0].start)
	assert.Equal(t, time.Date(2025, 7, 3, 0, 0, 0, 0, time.Local), bands[0].end)
	assert.Equal(t, time.Date(2025, 7, 4, 0, 0, 0, 0, time.Local), bands[1].start)
	assert.Equal(t, time.Date(2025, 7, 5, 0, 0, 0, 0, time.Local), bands[1].end)
}

// TestDayBandsClipping checks that bands never extend past the span.
func TestDayBandsClipping(t *testing.T) {
	first := time.Date(2025, 7, 1, 12, 0, 0, 0, time.Local)
	last := time.Date(2025, 7, 2, 12, 0, 0, 0, time.Local)

	bands := dayBands(first, last)
	require.Len(t, bands, 1)
	assert.Equal(t, time.Date(2025, 7, 2, 0, 0, 0, 0, time.Local), bands[0].start)
	assert.Equal(t, last, bands[0].end)
}

// TestDayBandsSingleDay checks that a span inside one calendar day has
// no shading at all.
func TestDayBandsSingleDay(t *testing.T) {
	first := time.Date(2025, 7, 1, 9, 0, 0, 0, time.Local)
	last := time.Date(2025, 7, 1, 17, 0, 0, 0, time.Local)

	assert.Empty(t, dayBands(first, last))
}

// TestTimeTicksSixHourGrid checks tick alignment and the endpoint
// guarantee.
func TestTimeTicksSixHourGrid(t *testing.T) {
	first := time.Date(2025, 7, 1, 7, 0, 0, 0, time.Local)
	last := time.Date(2025, 7, 2, 7, 0, 0, 0, time.Local)

	ticks := timeTicks(first, last)
	// Endpoints plus 12:00, 18:00, 00:00, 06:00.
	require.Len(t, ticks, 6)

	assert.Equal(t, timeValue(first), ticks[0].Value)
	assert.Equal(t, timeValue(last), ticks[len(ticks)-1].Value)
	assert.Equal(t, "07-01 12:00", ticks[1].Label)
	assert.Equal(t, "07-02 06:00", ticks[4].Label)

	for i := 1; i < len(ticks); i++ {
		assert.Greater(t, ticks[i].Value, ticks[i-1].Value)
	}
}

// TestTimeTicksShortSpan checks that spans shorter than the interval
// still get both endpoints.
func TestTimeTicksShortSpan(t *testing.T) {
	first := time.Date(2025, 7, 1, 10, 0, 0, 0, time.Local)
	last := first.Add(time.Hour)

	ticks := timeTicks(first, last)
	require.Len(t, ticks, 2)
	assert.Equal(t, timeValue(first), ticks[0].Value)
	assert.Equal(t, timeValue(last), ticks[1].Value)
}
