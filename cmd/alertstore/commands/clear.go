// ABOUTME: CLI command to clear the alert database
// ABOUTME: Truncates all tables while preserving the schema
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	clearForce bool
)

// NewClearCmd creates clear command
func NewClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every alert from the database",
		Long: `Remove every alert, asset, and play-order row from the database.
The schema is preserved and the next stored alert gets id 1.

Examples:
  alertstore clear --force`,
		RunE: runClear,
	}

	cmd.Flags().BoolVar(&clearForce, "force", false, "Skip the confirmation prompt")

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearForce {
		fmt.Fprint(cmd.OutOrStdout(), "Erase all alerts? [y/N]: ")
		var answer string
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &answer)
		if answer != "y" && answer != "Y" {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.ClearDatabase(); err != nil {
		return fmt.Errorf("clearing database: %w", err)
	}

	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "Alert database cleared.")
	}
	return nil
}
