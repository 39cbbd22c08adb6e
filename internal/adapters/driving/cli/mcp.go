package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ldo-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can read the forum.

The server exposes the list_topics, list_categories and read_topic tools
and the ldo://topics/{id} resource. By default it communicates over stdio
using JSON-RPC.

Use --port to start a streamable HTTP server instead, for the MCP
Inspector or remote access.

Examples:
  # Stdio mode (default)
  ldo mcp serve

  # HTTP mode
  ldo mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "ldo": {
        "command": "/path/to/ldo",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().Int("port", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	settings := currentSettings()
	server, err := mcp.NewServer(&mcp.Ports{Forum: forumService}, mcp.Options{
		Version:   version,
		BaseURL:   settings.BaseURL,
		Limit:     settings.Limit,
		ReadLimit: settings.ReadLimit,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(commandContext(cmd), addr)
	}

	return server.Run(commandContext(cmd))
}
