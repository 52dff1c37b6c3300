// ABOUTME: MCP tool handler implementations for the alert store server
// ABOUTME: Handlers report failures as tool results, never as protocol errors
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/alertstore/internal/models"
	"github.com/harper/alertstore/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	storage storage.AlertStorage
}

// ListAlerts handles the list_alerts tool
func (h *Handlers) ListAlerts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	alerts, err := h.storage.Load()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load alerts: %v", err)), nil
	}

	payload, err := json.MarshalIndent(alerts, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode alerts: %v", err)), nil
	}

	return mcp.NewToolResultText(string(payload)), nil
}

// AlertStats handles the alert_stats tool
func (h *Handlers) AlertStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	alerts, err := h.storage.Load()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load alerts: %v", err)), nil
	}

	byState := make(map[models.AlertState]int)
	byType := make(map[models.AlertType]int)
	for _, alert := range alerts {
		byState[alert.State]++
		byType[alert.Type]++
	}

	stats := map[string]interface{}{
		"total_alerts": len(alerts),
		"by_state":     byState,
		"by_type":      byType,
	}

	payload, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode stats: %v", err)), nil
	}

	return mcp.NewToolResultText(string(payload)), nil
}

// EraseAlert handles the erase_alert tool
func (h *Handlers) EraseAlert(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetInt("id", 0)
	if id <= 0 {
		return mcp.NewToolResultError("id argument is required and must be a positive number"), nil
	}

	if err := h.storage.EraseByIDs([]int{id}); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to erase alert %d: %v", id, err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("erased alert %d", id)), nil
}

// ClearAlerts handles the clear_alerts tool
func (h *Handlers) ClearAlerts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.storage.ClearDatabase(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to clear database: %v", err)), nil
	}

	return mcp.NewToolResultText("alert database cleared"), nil
}
