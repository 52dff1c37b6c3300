// ABOUTME: Alert represents a user-scheduled alarm, timer, or reminder
// ABOUTME: Core data structure persisted by the alert storage layer
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AlertType identifies which kind of alert a record represents
type AlertType string

const (
	TypeAlarm    AlertType = "ALARM"
	TypeTimer    AlertType = "TIMER"
	TypeReminder AlertType = "REMINDER"
)

// AlertState represents the lifecycle state of an alert
type AlertState string

const (
	StateUnset      AlertState = "UNSET"
	StateSet        AlertState = "SET"
	StateActivating AlertState = "ACTIVATING"
	StateActive     AlertState = "ACTIVE"
	StateSnoozing   AlertState = "SNOOZING"
	StateSnoozed    AlertState = "SNOOZED"
	StateStopping   AlertState = "STOPPING"
	StateStopped    AlertState = "STOPPED"
	StateCompleted  AlertState = "COMPLETED"
	StateReady      AlertState = "READY"
)

// AllStates lists every lifecycle state in its persisted order
var AllStates = []AlertState{
	StateUnset, StateSet, StateActivating, StateActive, StateSnoozing,
	StateSnoozed, StateStopping, StateStopped, StateCompleted, StateReady,
}

// Alert is a user-scheduled time-bound event with optional audio assets.
// DatabaseID is zero until the alert has been stored; the storage layer
// writes the assigned id back into the struct.
type Alert struct {
	DatabaseID           int                `json:"database_id"`
	Token                string             `json:"token"`
	Type                 AlertType          `json:"type"`
	State                AlertState         `json:"state"`
	ScheduledTimeUnix    int64              `json:"scheduled_time_unix"`
	ScheduledTimeISO8601 string             `json:"scheduled_time_iso_8601"`
	AssetConfiguration   AssetConfiguration `json:"asset_configuration"`
}

// NewAlarm creates a new alarm in the SET state
func NewAlarm(token string, scheduledTime time.Time) *Alert {
	return newAlert(TypeAlarm, token, scheduledTime)
}

// NewTimer creates a new timer in the SET state
func NewTimer(token string, scheduledTime time.Time) *Alert {
	return newAlert(TypeTimer, token, scheduledTime)
}

// NewReminder creates a new reminder in the SET state
func NewReminder(token string, scheduledTime time.Time) *Alert {
	return newAlert(TypeReminder, token, scheduledTime)
}

func newAlert(alertType AlertType, token string, scheduledTime time.Time) *Alert {
	if token == "" {
		token = generateToken(alertType)
	}
	alert := &Alert{
		Token:              token,
		Type:               alertType,
		State:              StateSet,
		AssetConfiguration: NewAssetConfiguration(),
	}
	alert.SetScheduledTime(scheduledTime)
	return alert
}

// generateToken generates a unique alert token
func generateToken(alertType AlertType) string {
	return fmt.Sprintf("%s_%s_%s", strings.ToLower(string(alertType)),
		time.Now().Format("20060102_150405"), uuid.New().String()[:8])
}

// SetScheduledTime sets both persisted representations of the scheduled
// instant, keeping them consistent.
func (a *Alert) SetScheduledTime(t time.Time) {
	utc := t.UTC().Truncate(time.Second)
	a.ScheduledTimeUnix = utc.Unix()
	a.ScheduledTimeISO8601 = utc.Format(time.RFC3339)
}

// ScheduledTime returns the scheduled instant
func (a *Alert) ScheduledTime() time.Time {
	return time.Unix(a.ScheduledTimeUnix, 0).UTC()
}

// Validate checks if the Alert has valid data
func (a *Alert) Validate() error {
	if a.Token == "" {
		return errors.New("token cannot be empty")
	}
	if a.Type != TypeAlarm && a.Type != TypeTimer && a.Type != TypeReminder {
		return fmt.Errorf("invalid alert type %q", a.Type)
	}
	stateValid := false
	for _, s := range AllStates {
		if a.State == s {
			stateValid = true
			break
		}
	}
	if !stateValid {
		return fmt.Errorf("invalid alert state %q", a.State)
	}
	if a.AssetConfiguration.LoopCount < 0 {
		return errors.New("loop count cannot be negative")
	}
	if a.AssetConfiguration.LoopPause < 0 {
		return errors.New("loop pause cannot be negative")
	}
	return nil
}

// Summary returns a human-readable description of the alert. When detail is
// true the asset catalog and play order are included.
func (a *Alert) Summary(detail bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s id=%d token=%s state=%s scheduled=%s",
		a.Type, a.DatabaseID, a.Token, a.State, a.ScheduledTimeISO8601)
	if detail {
		cfg := &a.AssetConfiguration
		fmt.Fprintf(&b, " loopCount=%d loopPause=%s background=%q",
			cfg.LoopCount, cfg.LoopPause, cfg.BackgroundAssetID)
		for _, id := range cfg.SortedAssetIDs() {
			fmt.Fprintf(&b, "\n  asset %s -> %s", id, cfg.Assets[id].URL)
		}
		if len(cfg.PlayOrder) > 0 {
			fmt.Fprintf(&b, "\n  play order: %s", strings.Join(cfg.PlayOrder, ", "))
		}
	}
	return b.String()
}
