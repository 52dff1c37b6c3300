// ABOUTME: Tests for list command
// ABOUTME: Verifies command metadata and output format flag

package commands

import "testing"

func TestNewListCmd(t *testing.T) {
	cmd := NewListCmd()

	if cmd.Use != "list" {
		t.Errorf("Use = %q, want %q", cmd.Use, "list")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.RunE == nil {
		t.Error("RunE should be set")
	}

	flag := cmd.Flags().Lookup("format")
	if flag == nil {
		t.Fatal("--format flag not found")
	}
	if flag.DefValue != "table" {
		t.Errorf("--format default = %q, want %q", flag.DefValue, "table")
	}
}
