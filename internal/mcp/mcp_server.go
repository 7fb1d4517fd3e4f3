// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/beemon/beemon/internal/contract"
)

// NewMCPServer initializes and configures the Beemon MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Beemon Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: inspect_table ---
	s.AddTool(mcp.NewTool("inspect_table",
		mcp.WithDescription("Normalize a hive entrance CSV export and report row counts, time range and per-window coverage."),
		mcp.WithString("input", mcp.Description("Path to the CSV export (defaults to the latest export under the data directory).")),
		mcp.WithString("data_dir", mcp.Description("Directory scanned for exports when no input path is given.")),
	), h.handleInspectTable)

	// --- 2. Tool: render_charts ---
	s.AddTool(mcp.NewTool("render_charts",
		mcp.WithDescription("Run the full chart pipeline for one export and return the run summary with all generated artifacts."),
		mcp.WithString("input", mcp.Description("Path to the CSV export (defaults to the latest export under the data directory).")),
		mcp.WithString("data_dir", mcp.Description("Directory scanned for exports when no input path is given.")),
		mcp.WithString("out_dir", mcp.Description("Directory that chart PNGs are written into.")),
	), h.handleRenderCharts)

	return s
}

// StartMCPServer starts the Beemon MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
