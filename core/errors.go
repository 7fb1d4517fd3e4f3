package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beemon/beemon/schema"
)

// ErrNoInputFile is returned when the data directory holds no export
// matching the configured pattern.
var ErrNoInputFile = errors.New("no matching input file found")

// SchemaError reports required columns missing from the export after
// alias reconciliation. It is raised before any row-level access.
type SchemaError struct {
	Missing []schema.ColumnName
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("csv is missing columns: %s (expected columns: %s)",
		joinColumns(e.Missing), joinColumns(schema.RequiredColumns))
}

// TimestampFormatError reports that no accepted timestamp format parses
// every row of the export.
type TimestampFormatError struct {
	Sample string
}

func (e *TimestampFormatError) Error() string {
	return fmt.Sprintf("cannot parse timestamp format of column %q (sample value: %q)",
		string(schema.ColTimestamp), e.Sample)
}

func joinColumns(cols []schema.ColumnName) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
