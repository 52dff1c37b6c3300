// ABOUTME: CLI command to print alert database statistics
// ABOUTME: Exposes the storage layer's three diagnostic verbosity levels
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/alertstore/internal/storage"
)

var (
	statsLevel string
)

// NewStatsCmd creates stats command
func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print alert database statistics",
		Long: `Print a read-only summary of the alert database.

Levels:
  one-line    total alert count only
  summary     count plus one line per alert
  everything  summary plus asset catalogs and play orders

Examples:
  alertstore stats
  alertstore stats --level everything`,
		RunE: runStats,
	}

	cmd.Flags().StringVar(&statsLevel, "level", "one-line", "Detail level: one-line, summary, or everything")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	var level storage.StatLevel
	switch statsLevel {
	case "one-line":
		level = storage.StatLevelOneLine
	case "summary":
		level = storage.StatLevelAlertsSummary
	case "everything":
		level = storage.StatLevelEverything
	default:
		return fmt.Errorf("unknown stats level %q", statsLevel)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	return store.PrintStats(level)
}
