package cmd

import (
	"github.com/spf13/cobra"

	"github.com/beemon/beemon/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Beemon MCP server",
	Long:  `Launch an MCP server that allows AI agents to inspect sensor exports and render charts via standard tools.`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// Stdio carries the protocol, so setup must not print to stdout.
		return sharedSetup(nil)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}
