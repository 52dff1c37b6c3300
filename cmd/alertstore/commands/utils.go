// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Consolidates store setup and formatting helpers
package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/harper/alertstore/internal/config"
	"github.com/harper/alertstore/internal/storage/sqlite"
	"github.com/joho/godotenv"
)

// openStore loads configuration and binds a store to the configured database
// file, creating it when permitted.
func openStore() (*sqlite.AlertStore, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	store := sqlite.NewAlertStore()
	if cfg.AutoCreate {
		err = store.OpenOrCreate(cfg.DBPath)
	} else {
		err = store.Open(cfg.DBPath)
	}
	if err != nil {
		return nil, fmt.Errorf("opening alert database: %w", err)
	}

	return store, nil
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}

// formatSchedule formats a scheduled instant for display
func formatSchedule(unix int64) string {
	t := time.Unix(unix, 0).UTC()
	diff := time.Until(t)

	switch {
	case diff < -time.Minute:
		return fmt.Sprintf("%s (past)", t.Format("2006-01-02 15:04"))
	case diff < time.Minute:
		return "now"
	case diff < time.Hour:
		return fmt.Sprintf("in %dm", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("in %dh%02dm", int(diff.Hours()), int(diff.Minutes())%60)
	default:
		return t.Format("2006-01-02 15:04")
	}
}

// parseKeyValue splits an "avs_id=url" flag value
func parseKeyValue(s string) (string, string, error) {
	parts := strings.SplitN(s, "=", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("expected avs_id=url, got %q", s)
	}
	return parts[0], parts[1], nil
}
