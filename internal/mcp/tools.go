// ABOUTME: MCP tool definitions and registration for the alert store server
// ABOUTME: Exposes read and maintenance operations over the stored alerts
package mcp

import (
	"github.com/harper/alertstore/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, store storage.AlertStorage) *Handlers {
	handlers := &Handlers{storage: store}

	// 1. list_alerts - List every stored alert
	server.AddTool(mcp.Tool{
		Name:        "list_alerts",
		Description: "List all stored alerts with their schedule, state, asset catalog and play order.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListAlerts)

	// 2. alert_stats - Summary counts of the database contents
	server.AddTool(mcp.Tool{
		Name:        "alert_stats",
		Description: "Get summary statistics for the alert database: total alerts and a per-state breakdown.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.AlertStats)

	// 3. erase_alert - Delete one alert by database id
	server.AddTool(mcp.Tool{
		Name:        "erase_alert",
		Description: "Erase a stored alert and its assets by database id.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "number",
					"description": "Database id of the alert to erase",
				},
			},
			Required: []string{"id"},
		},
	}, handlers.EraseAlert)

	// 4. clear_alerts - Truncate the database
	server.AddTool(mcp.Tool{
		Name:        "clear_alerts",
		Description: "Remove every alert from the database. The schema is preserved.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ClearAlerts)

	return handlers
}
