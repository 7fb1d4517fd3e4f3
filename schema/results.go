package schema

import "time"

// Artifact is one rendered chart file.
type Artifact struct {
	Kind ChartKind `json:"kind"`
	Path string    `json:"path"`
}

// WindowResult records what the pipeline produced for one window.
type WindowResult struct {
	Window    Window     `json:"window"`
	Rows      int        `json:"rows"`
	Skipped   bool       `json:"skipped"`
	Artifacts []Artifact `json:"artifacts,omitempty"`
}

// RunResult summarizes a whole charts run for printing and for the
// MCP render tool.
type RunResult struct {
	InputFile       string         `json:"input_file"`
	TimestampFormat string         `json:"timestamp_format"`
	TotalRows       int            `json:"total_rows"`
	FirstTimestamp  time.Time      `json:"first_timestamp"`
	LastTimestamp   time.Time      `json:"last_timestamp"`
	OutputDir       string         `json:"output_dir"`
	Windows         []WindowResult `json:"windows"`
}

// ArtifactCount returns the number of chart files written across all
// windows.
func (r RunResult) ArtifactCount() int {
	n := 0
	for _, w := range r.Windows {
		n += len(w.Artifacts)
	}
	return n
}
