// ABOUTME: Root command for the alertstore CLI
// ABOUTME: Wires subcommands and global flags into a single Cobra tree
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

const banner = `
█████╗ ██╗     ███████╗██████╗ ████████╗███████╗
██╔══██╗██║     ██╔════╝██╔══██╗╚══██╔══╝██╔════╝
███████║██║     █████╗  ██████╔╝   ██║   ███████╗
██╔══██║██║     ██╔══╝  ██╔══██╗   ██║   ╚════██║
██║  ██║███████╗███████╗██║  ██║   ██║   ███████║
╚═╝  ╚═╝╚══════╝╚══════╝╚═╝  ╚═╝   ╚═╝   ╚══════╝`

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alertstore",
		Short: "Durable store for voice-assistant alarms, timers, and reminders",
		Long: banner + `

alertstore manages the local SQLite database that keeps user-scheduled
alarms, timers, and reminders across restarts and reboots.

The database location comes from ALERTSTORE_DB (or the XDG data dir by
default) and is created on first use.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewAddCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewStatsCmd())
	cmd.AddCommand(NewEraseCmd())
	cmd.AddCommand(NewClearCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
