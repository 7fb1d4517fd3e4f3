package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/beemon/beemon/internal/contract"
	"github.com/beemon/beemon/schema"
)

// printJSONSummary handles opening the file and calling the JSON writer.
func printJSONSummary(result *schema.RunResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}, "Wrote JSON run summary")
}

// printSummaryTable prints the per-window summary as a table plus a
// completion line.
func printSummaryTable(result *schema.RunResult, cfg *contract.Config, duration time.Duration) error {
	fmt.Printf("Input: %s (%d rows, timestamp format %q)\n",
		result.InputFile, result.TotalRows, result.TimestampFormat)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Window", "Days", "Rows", "Status", "Artifacts"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := GetMaxArtifactWidth(cfg)
	var data [][]string
	for _, wr := range result.Windows {
		names := make([]string, 0, len(wr.Artifacts))
		for _, a := range wr.Artifacts {
			names = append(names, filepath.Base(a.Path))
		}
		artifacts := truncateLeft(strings.Join(names, ", "), maxWidth)
		if artifacts == "" {
			artifacts = "-"
		}
		row := []string{
			wr.Window.Label,
			fmt.Sprintf("%02d-%02d", wr.Window.DayStart, wr.Window.DayEnd),
			strconv.Itoa(wr.Rows),
			statusLabel(wr, cfg.UseColors),
			artifacts,
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Charts completed in %v: %d artifacts under %s\n",
		duration.Round(time.Millisecond), result.ArtifactCount(), result.OutputDir)
	return nil
}

func statusLabel(wr schema.WindowResult, useColors bool) string {
	if wr.Skipped {
		if useColors {
			return contract.SkipColor.Sprint("Skipped")
		}
		return "Skipped"
	}
	if useColors {
		return contract.OKColor.Sprint("OK")
	}
	return "OK"
}
