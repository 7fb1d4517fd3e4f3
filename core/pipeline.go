package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/beemon/beemon/internal/contract"
	"github.com/beemon/beemon/internal/outwriter"
	"github.com/beemon/beemon/internal/render"
	"github.com/beemon/beemon/schema"
)

// ExecuteCharts runs the full locate → normalize → segment → render
// pipeline and prints the per-window summary.
func ExecuteCharts(cfg *contract.Config) error {
	start := time.Now()

	result, err := RunPipeline(cfg)
	if err != nil {
		return err
	}

	ow := outwriter.NewOutWriter()
	return ow.WriteSummary(result, cfg, time.Since(start))
}

// RunPipeline produces all chart artifacts for one export and returns
// the run summary. It is shared by the charts command and the MCP
// render tool.
//
// Structural failures (no input, missing columns, bad timestamps)
// abort before anything is written, so a failed load never leaves a
// half-populated output directory. An empty window is a soft skip.
func RunPipeline(cfg *contract.Config) (*schema.RunResult, error) {
	input := cfg.InputFile
	if input == "" {
		located, err := LatestInputFile(cfg.DataDir, cfg.InputPattern)
		if err != nil {
			return nil, err
		}
		input = located
	}

	table, format, err := LoadTable(input)
	if err != nil {
		return nil, err
	}

	// Validation is behind us; only now touch the output directory.
	// MkdirAll succeeds if the directory already exists.
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", cfg.OutDir, err)
	}

	first, last := table.TimeRange()
	result := &schema.RunResult{
		InputFile:       input,
		TimestampFormat: format,
		TotalRows:       len(table),
		FirstTimestamp:  first,
		LastTimestamp:   last,
		OutputDir:       cfg.OutDir,
	}

	for _, segment := range Segment(table) {
		wr := schema.WindowResult{Window: segment.Window, Rows: len(segment.Rows)}
		if len(segment.Rows) == 0 {
			contract.LogWarnf("window %s has no rows, skipping charts", segment.Window.Label)
			wr.Skipped = true
			result.Windows = append(result.Windows, wr)
			continue
		}

		for _, kind := range schema.AllChartKinds {
			outPath := filepath.Join(cfg.OutDir, ArtifactName(kind, segment.Window.Label))
			png, err := render.Render(kind, segment.Rows, segment.Window.Label)
			if err != nil {
				if errors.Is(err, render.ErrNoSeries) {
					contract.LogWarnf("window %s: %v, skipping %s chart", segment.Window.Label, err, kind)
					continue
				}
				return nil, fmt.Errorf("render %s %s: %w", kind, segment.Window.Label, err)
			}
			if err := os.WriteFile(outPath, png, 0o644); err != nil {
				return nil, fmt.Errorf("write %s: %w", outPath, err)
			}
			wr.Artifacts = append(wr.Artifacts, schema.Artifact{Kind: kind, Path: outPath})
		}
		result.Windows = append(result.Windows, wr)
	}
	return result, nil
}

// ArtifactName returns the output filename for one chart kind and
// window label, e.g. "inout_01-10.png".
func ArtifactName(kind schema.ChartKind, label string) string {
	return fmt.Sprintf("%s_%s.png", kind, label)
}
