// ABOUTME: Tests for stats command
// ABOUTME: Verifies command metadata and detail level validation

package commands

import (
	"strings"
	"testing"
)

func TestNewStatsCmd(t *testing.T) {
	cmd := NewStatsCmd()

	if cmd.Use != "stats" {
		t.Errorf("Use = %q, want %q", cmd.Use, "stats")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	flag := cmd.Flags().Lookup("level")
	if flag == nil {
		t.Fatal("--level flag not found")
	}
	if flag.DefValue != "one-line" {
		t.Errorf("--level default = %q, want %q", flag.DefValue, "one-line")
	}
}

func TestStatsCmd_RejectsUnknownLevel(t *testing.T) {
	originalLevel := statsLevel
	defer func() { statsLevel = originalLevel }()
	cmd := NewStatsCmd()
	statsLevel = "verbose"

	err := runStats(cmd, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown stats level") {
		t.Errorf("runStats error = %v, want unknown stats level", err)
	}
}
