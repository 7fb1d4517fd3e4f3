package schema

import "time"

// Custom string types for type safety.
type (
	// ColumnName represents a logical CSV column name.
	ColumnName string

	// OutputMode represents the format of the summary output.
	OutputMode string

	// ChartKind represents one of the rendered chart flavors.
	ChartKind string
)

// Canonical column names expected in the sensor export.
const (
	ColTimestamp  ColumnName = "timestamp"
	ColInWorker   ColumnName = "in_worker"
	ColOutWorker  ColumnName = "out_worker"
	ColInPollen   ColumnName = "in_pollen"
	ColOutPollen  ColumnName = "out_pollen"
	ColInDrone    ColumnName = "in_drone"
	ColOutDrone   ColumnName = "out_drone"
	ColPollenRate ColumnName = "pollen_rate"
)

// RequiredColumns lists the columns that must be present after alias
// reconciliation, in the order used for diagnostics. ColPollenRate is
// intentionally absent: it is optional input and derived when missing.
var RequiredColumns = []ColumnName{
	ColTimestamp,
	ColInWorker, ColOutWorker,
	ColInPollen, ColOutPollen,
	ColInDrone, ColOutDrone,
}

// ColumnAliases maps legacy export spellings to their canonical names.
// The rename is best-effort: absent aliases are simply ignored.
var ColumnAliases = map[ColumnName]ColumnName{
	"inpollen":  ColInPollen,
	"outpollen": ColOutPollen,
}

// All summary output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
}

// All chart kinds rendered per window.
const (
	InoutChart  ChartKind = "inout"
	PollenChart ChartKind = "pollen"
)

// AllChartKinds returns the chart kinds in render order.
var AllChartKinds = []ChartKind{InoutChart, PollenChart}

// TimestampFormat is a named group of layouts tried as a single matcher.
// A format matches only when one of its layouts parses a value.
type TimestampFormat struct {
	Name    string
	Layouts []string
}

// Parse attempts each layout of the format in order.
func (f TimestampFormat) Parse(value string) (time.Time, error) {
	var firstErr error
	for _, layout := range f.Layouts {
		ts, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return ts, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// TimestampFormats is the ordered list of accepted timestamp formats.
// A format wins only when it parses every row of the export; otherwise
// the next one is tried. The "auto" entry covers common unambiguous
// machine formats before the site-specific fallbacks.
var TimestampFormats = []TimestampFormat{
	{Name: "auto", Layouts: []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"}},
	{Name: "slash-minutes", Layouts: []string{"2006/01/02 15:04"}},
	{Name: "dash-minutes", Layouts: []string{"2006-01-02 15:04"}},
}

// DefaultInputPattern matches the monthly sensor exports dropped into
// the data directory.
const DefaultInputPattern = "*_inout.csv"
