// ABOUTME: Tests for MCP command
// ABOUTME: Verifies command metadata for the stdio server entrypoint

package commands

import (
	"strings"
	"testing"
)

func TestNewMCPCmd(t *testing.T) {
	cmd := NewMCPCmd()

	if cmd.Use != "mcp" {
		t.Errorf("Use = %q, want %q", cmd.Use, "mcp")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}

	if cmd.RunE == nil {
		t.Error("RunE should be set")
	}

	if !strings.Contains(cmd.Example, "alertstore mcp") {
		t.Error("Example should show how to start the server")
	}
}
