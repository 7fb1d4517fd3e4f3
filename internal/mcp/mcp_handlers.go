package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/beemon/beemon/core"
	"github.com/beemon/beemon/internal/contract"
	"github.com/beemon/beemon/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// tableInspection is the JSON payload returned by inspect_table.
type tableInspection struct {
	InputFile       string             `json:"input_file"`
	TimestampFormat string             `json:"timestamp_format"`
	TotalRows       int                `json:"total_rows"`
	FirstTimestamp  string             `json:"first_timestamp"`
	LastTimestamp   string             `json:"last_timestamp"`
	Windows         []windowInspection `json:"windows"`
}

type windowInspection struct {
	Window schema.Window `json:"window"`
	Rows   int           `json:"rows"`
}

func (h *toolHandler) handleInspectTable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.overriddenConfig(request)

	input := cfg.InputFile
	if input == "" {
		located, err := core.LatestInputFile(cfg.DataDir, cfg.InputPattern)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("locate input failed: %v", err)), nil
		}
		input = located
	}

	table, format, err := core.LoadTable(input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("normalization failed: %v", err)), nil
	}

	first, last := table.TimeRange()
	inspection := tableInspection{
		InputFile:       input,
		TimestampFormat: format,
		TotalRows:       len(table),
		FirstTimestamp:  first.Format("2006-01-02 15:04:05"),
		LastTimestamp:   last.Format("2006-01-02 15:04:05"),
	}
	for _, segment := range core.Segment(table) {
		inspection.Windows = append(inspection.Windows, windowInspection{
			Window: segment.Window,
			Rows:   len(segment.Rows),
		})
	}

	jsonData, _ := json.MarshalIndent(inspection, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRenderCharts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.overriddenConfig(request)
	if d := request.GetString("out_dir", ""); d != "" {
		cfg.OutDir = d
	}

	result, err := core.RunPipeline(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("pipeline failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// overriddenConfig clones the base config and applies the request
// parameters shared by all tools.
func (h *toolHandler) overriddenConfig(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("input", ""); p != "" {
		cfg.InputFile = p
	}
	if d := request.GetString("data_dir", ""); d != "" {
		cfg.DataDir = d
	}
	return cfg
}
