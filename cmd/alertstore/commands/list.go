// ABOUTME: CLI command to list stored alerts
// ABOUTME: Shows alerts with schedule and state in table or JSON form
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	listFormat string
)

// NewListCmd creates list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored alerts",
		Long: `List every alert in the database with its schedule and state.

Examples:
  alertstore list
  alertstore list --format json`,
		RunE: runList,
	}

	cmd.Flags().StringVar(&listFormat, "format", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	alerts, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading alerts: %w", err)
	}

	if listFormat == "json" {
		payload, err := json.MarshalIndent(alerts, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding alerts: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(payload))
		return nil
	}

	if len(alerts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No alerts stored.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tTOKEN\tSTATE\tSCHEDULED\tASSETS")
	for _, alert := range alerts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n",
			alert.DatabaseID, alert.Type, truncate(alert.Token, 32), alert.State,
			formatSchedule(alert.ScheduledTimeUnix), len(alert.AssetConfiguration.Assets))
	}
	return w.Flush()
}
