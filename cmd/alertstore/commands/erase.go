// ABOUTME: CLI command to erase alerts by database id
// ABOUTME: Validates every id before any row is deleted
package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewEraseCmd creates erase command
func NewEraseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "erase <id> [id...]",
		Short: "Erase alerts by database id",
		Long: `Erase one or more alerts, including their asset catalogs and play
orders. All ids are checked first; a missing id leaves the store unchanged.

Examples:
  alertstore erase 3
  alertstore erase 1 4 7`,
		Args: cobra.MinimumNArgs(1),
		RunE: runErase,
	}

	return cmd
}

func runErase(cmd *cobra.Command, args []string) error {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid alert id %q", arg)
		}
		ids = append(ids, id)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.EraseByIDs(ids); err != nil {
		return fmt.Errorf("erasing alerts: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Erased %d alert(s)\n", len(ids))
	}
	return nil
}
