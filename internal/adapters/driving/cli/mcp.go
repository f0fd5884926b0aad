package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sourcebook/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can query the catalog.

Tools: search_sources, get_source, describe_format, list_categories.
Resources: sourcebook://sources, sourcebook://sources/{id},
sourcebook://formats, sourcebook://pages/about, sourcebook://pages/learn.

By default the server communicates over stdio using JSON-RPC.
Use --port to serve streamable HTTP instead, e.g. for MCP Inspector.

Examples:
  # Stdio mode (default, for desktop assistants)
  sourcebook mcp serve

  # HTTP mode
  sourcebook mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "sourcebook": {
        "command": "/path/to/sourcebook",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Catalog: catalogService,
		Format:  formatService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
