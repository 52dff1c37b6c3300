// ABOUTME: CLI command to add a new alert
// ABOUTME: Builds an alarm, timer, or reminder with assets and stores it
package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/alertstore/internal/models"
)

var (
	addToken      string
	addAt         string
	addIn         time.Duration
	addLoopCount  int
	addLoopPause  time.Duration
	addBackground string
	addAssets     []string
	addPlayOrder  []string
)

// NewAddCmd creates add command
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <alarm|timer|reminder>",
		Short: "Add a new alert",
		Long: `Add a new alarm, timer, or reminder to the alert database.

The schedule is given either as an absolute RFC 3339 time (--at) or as a
delay from now (--in). Assets are named avs_id=url pairs; --play lists
asset tokens in playback order.

Examples:
  alertstore add timer --in 10m
  alertstore add alarm --at 2026-09-01T07:00:00Z --token wakeup
  alertstore add reminder --in 1h --asset chime=https://cdn/chime.mp3 --play chime`,
		Args: cobra.ExactArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().StringVar(&addToken, "token", "", "Alert token (generated when empty)")
	cmd.Flags().StringVar(&addAt, "at", "", "Scheduled time, RFC 3339")
	cmd.Flags().DurationVar(&addIn, "in", 0, "Schedule relative to now")
	cmd.Flags().IntVar(&addLoopCount, "loop-count", 0, "Times to loop the asset playlist")
	cmd.Flags().DurationVar(&addLoopPause, "loop-pause", 0, "Pause between playlist loops")
	cmd.Flags().StringVar(&addBackground, "background", "", "Default background asset id")
	cmd.Flags().StringSliceVar(&addAssets, "asset", []string{}, "Asset as avs_id=url (repeatable)")
	cmd.Flags().StringSliceVar(&addPlayOrder, "play", []string{}, "Playback order of asset tokens")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	scheduled, err := resolveSchedule()
	if err != nil {
		return err
	}

	var alert *models.Alert
	switch strings.ToLower(args[0]) {
	case "alarm":
		alert = models.NewAlarm(addToken, scheduled)
	case "timer":
		alert = models.NewTimer(addToken, scheduled)
	case "reminder":
		alert = models.NewReminder(addToken, scheduled)
	default:
		return fmt.Errorf("unknown alert kind %q (want alarm, timer, or reminder)", args[0])
	}

	cfg := &alert.AssetConfiguration
	cfg.LoopCount = addLoopCount
	cfg.LoopPause = addLoopPause
	cfg.BackgroundAssetID = addBackground
	for _, pair := range addAssets {
		avsID, url, err := parseKeyValue(pair)
		if err != nil {
			return fmt.Errorf("invalid --asset: %w", err)
		}
		cfg.AddAsset(avsID, url)
	}
	for _, token := range addPlayOrder {
		cfg.AppendPlayOrderToken(token)
	}

	if err := alert.Validate(); err != nil {
		return fmt.Errorf("invalid alert: %w", err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Store(alert); err != nil {
		return fmt.Errorf("storing alert: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Stored %s id=%d token=%s scheduled=%s\n",
			strings.ToLower(string(alert.Type)), alert.DatabaseID, alert.Token, alert.ScheduledTimeISO8601)
	}

	return nil
}

// resolveSchedule turns the --at / --in flags into a concrete instant
func resolveSchedule() (time.Time, error) {
	if addAt != "" && addIn != 0 {
		return time.Time{}, fmt.Errorf("--at and --in are mutually exclusive")
	}
	if addAt != "" {
		t, err := time.Parse(time.RFC3339, addAt)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --at time: %w", err)
		}
		return t, nil
	}
	if addIn != 0 {
		return time.Now().Add(addIn), nil
	}
	return time.Time{}, fmt.Errorf("a schedule is required (--at or --in)")
}
