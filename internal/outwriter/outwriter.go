// Package outwriter has output and writer logic for run summaries.
package outwriter

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/beemon/beemon/internal/contract"
	"github.com/beemon/beemon/schema"
)

// OutWriter provides a unified interface for all output operations.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteSummary prints the run summary using the configured output
// format.
func (ow *OutWriter) WriteSummary(result *schema.RunResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONSummary(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	default:
		if err := printSummaryTable(result, cfg, duration); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// GetMaxArtifactWidth calculates the width available for the artifact
// column based on terminal width and the fixed columns.
func GetMaxArtifactWidth(cfg *contract.Config) int {
	termWidth := cfg.Width

	if termWidth == 0 { // not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Window + Days + Rows + Status columns with borders and padding.
	const baseWidth = 40

	available := termWidth - baseWidth
	if available < 20 {
		return 20
	}
	if available > 70 {
		return 70
	}
	return available
}

// truncateLeft truncates a string to maxWidth with an ellipsis prefix,
// keeping the tail, which carries the filename.
func truncateLeft(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return s
}

// writeWithFile opens the configured output file (or stdout) and runs
// the writer against it.
func writeWithFile(path string, write func(w io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(path)
	if err != nil {
		return err
	}
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}
	if err := write(file); err != nil {
		return err
	}
	if file != os.Stdout {
		_, _ = fmt.Fprintf(os.Stderr, "%s to %s\n", successMsg, path)
	}
	return nil
}
