// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to inspect and maintain the alert store via stdio
package commands

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/harper/alertstore/internal/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs the alert store as an MCP (Model Context Protocol) server over stdio,
exposing read and maintenance tools for the stored alerts.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an agent host)
  alertstore mcp

  # Configure in the host's MCP config:
  # {
  #   "mcpServers": {
  #     "alertstore": {
  #       "command": "alertstore",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	server := mcpserver.NewMCPServer(
		"Alert Store",
		versionInfo.Version,
	)

	mcp.RegisterTools(server, store)

	if verbose {
		log.Printf("[MCP] serving alert store at %s over stdio", store.Path())
	}

	if err := mcpserver.ServeStdio(server); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}

	return nil
}
