package core

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/beemon/beemon/schema"
)

// LoadTable reads and normalizes the export at path.
// It returns the validated table and the name of the winning timestamp
// format.
func LoadTable(path string) (schema.Table, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	table, format, err := ReadTable(f)
	if err != nil {
		return nil, "", fmt.Errorf("normalize %s: %w", path, err)
	}
	return table, format, nil
}

// ReadTable normalizes raw CSV input into a validated observation table:
// it reconciles column aliases, verifies the required column set,
// resolves the timestamp format, derives the pollen ratio when absent,
// and returns the rows sorted ascending by timestamp.
//
// Any structural problem (missing columns, unparseable timestamps,
// malformed numbers) fails the whole table; there is no partial load.
func ReadTable(r io.Reader) (schema.Table, string, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, "", fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, "", fmt.Errorf("read csv: missing header row")
	}

	columns := resolveColumns(records[0])
	if missing := missingColumns(columns); len(missing) > 0 {
		return nil, "", &SchemaError{Missing: missing}
	}
	rows := records[1:]

	timestamps, format, err := parseTimestamps(rows, columns[schema.ColTimestamp])
	if err != nil {
		return nil, "", err
	}

	table := make(schema.Table, 0, len(rows))
	for i, row := range rows {
		obs, err := parseCounts(row, columns)
		if err != nil {
			return nil, "", fmt.Errorf("row %d: %w", i+1, err)
		}
		obs.Timestamp = timestamps[i]

		rate, err := resolveRate(row, columns, obs)
		if err != nil {
			return nil, "", fmt.Errorf("row %d: %w", i+1, err)
		}
		obs.PollenRate = rate
		table = append(table, obs)
	}

	// Stable, so rows sharing a timestamp keep their input order.
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Timestamp.Before(table[j].Timestamp)
	})
	return table, format, nil
}

// resolveColumns maps canonical column names to their index in the
// header, applying the alias table. The first header cell may carry a
// UTF-8 BOM from spreadsheet exports.
func resolveColumns(header []string) map[schema.ColumnName]int {
	columns := make(map[schema.ColumnName]int, len(header))
	for i, cell := range header {
		if i == 0 {
			cell = strings.TrimPrefix(cell, "\ufeff")
		}
		name := schema.ColumnName(strings.TrimSpace(cell))
		if canonical, ok := schema.ColumnAliases[name]; ok {
			name = canonical
		}
		if _, taken := columns[name]; !taken {
			columns[name] = i
		}
	}
	return columns
}

func missingColumns(columns map[schema.ColumnName]int) []schema.ColumnName {
	var missing []schema.ColumnName
	for _, name := range schema.RequiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// parseTimestamps tries each accepted format in order; the first format
// that parses every row wins. No winner is a fatal error, never a
// partial load.
func parseTimestamps(rows [][]string, col int) ([]time.Time, string, error) {
	sample := ""
	for _, format := range schema.TimestampFormats {
		parsed := make([]time.Time, len(rows))
		ok := true
		for i, row := range rows {
			value := strings.TrimSpace(row[col])
			ts, err := format.Parse(value)
			if err != nil {
				if sample == "" {
					sample = value
				}
				ok = false
				break
			}
			parsed[i] = ts
		}
		if ok {
			return parsed, format.Name, nil
		}
	}
	return nil, "", &TimestampFormatError{Sample: sample}
}

func parseCounts(row []string, columns map[schema.ColumnName]int) (schema.Observation, error) {
	var obs schema.Observation
	for _, field := range []struct {
		name schema.ColumnName
		dst  *float64
	}{
		{schema.ColInWorker, &obs.InWorker},
		{schema.ColOutWorker, &obs.OutWorker},
		{schema.ColInPollen, &obs.InPollen},
		{schema.ColOutPollen, &obs.OutPollen},
		{schema.ColInDrone, &obs.InDrone},
		{schema.ColOutDrone, &obs.OutDrone},
	} {
		value, err := strconv.ParseFloat(strings.TrimSpace(row[columns[field.name]]), 64)
		if err != nil {
			return obs, fmt.Errorf("column %s: %w", field.name, err)
		}
		*field.dst = value
	}
	return obs, nil
}

// resolveRate applies the union contract for pollen_rate: a provided
// per-row value wins (blank means undefined), and the ratio is derived
// only when the column is absent. A zero denominator yields an
// undefined ratio, never zero and never an error.
func resolveRate(row []string, columns map[schema.ColumnName]int, obs schema.Observation) (*float64, error) {
	if col, ok := columns[schema.ColPollenRate]; ok {
		value := strings.TrimSpace(row[col])
		if value == "" {
			return nil, nil
		}
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", schema.ColPollenRate, err)
		}
		return &rate, nil
	}

	denominator := obs.InWorker + obs.InPollen + obs.InDrone
	if denominator == 0 {
		return nil, nil
	}
	rate := obs.InPollen / denominator
	return &rate, nil
}
