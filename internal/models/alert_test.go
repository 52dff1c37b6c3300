// ABOUTME: Tests for the Alert domain model
// ABOUTME: Verifies constructors, validation, and schedule consistency
package models

import (
	"strings"
	"testing"
	"time"
)

func TestNewAlertConstructors(t *testing.T) {
	scheduled := time.Unix(1700000000, 0)

	tests := []struct {
		name  string
		alert *Alert
		typ   AlertType
	}{
		{"alarm", NewAlarm("", scheduled), TypeAlarm},
		{"timer", NewTimer("", scheduled), TypeTimer},
		{"reminder", NewReminder("", scheduled), TypeReminder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.alert.Type != tt.typ {
				t.Errorf("Type = %q, want %q", tt.alert.Type, tt.typ)
			}
			if tt.alert.State != StateSet {
				t.Errorf("State = %q, want SET", tt.alert.State)
			}
			if tt.alert.Token == "" {
				t.Error("Token should be generated when empty")
			}
			if tt.alert.DatabaseID != 0 {
				t.Errorf("DatabaseID = %d, want 0 before store", tt.alert.DatabaseID)
			}
			if err := tt.alert.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestGeneratedTokensAreUnique(t *testing.T) {
	a := NewTimer("", time.Now())
	b := NewTimer("", time.Now())
	if a.Token == b.Token {
		t.Errorf("two generated tokens are equal: %q", a.Token)
	}
}

func TestSetScheduledTimeKeepsPairConsistent(t *testing.T) {
	alert := NewAlarm("t", time.Time{})
	alert.SetScheduledTime(time.Unix(1700000000, 0))

	if alert.ScheduledTimeUnix != 1700000000 {
		t.Errorf("ScheduledTimeUnix = %d, want 1700000000", alert.ScheduledTimeUnix)
	}
	if alert.ScheduledTimeISO8601 != "2023-11-14T22:13:20Z" {
		t.Errorf("ScheduledTimeISO8601 = %q, want 2023-11-14T22:13:20Z", alert.ScheduledTimeISO8601)
	}

	parsed, err := time.Parse(time.RFC3339, alert.ScheduledTimeISO8601)
	if err != nil {
		t.Fatalf("ISO field does not parse: %v", err)
	}
	if parsed.Unix() != alert.ScheduledTimeUnix {
		t.Errorf("ISO field instant %d != unix field %d", parsed.Unix(), alert.ScheduledTimeUnix)
	}

	if !alert.ScheduledTime().Equal(time.Unix(1700000000, 0).UTC()) {
		t.Errorf("ScheduledTime() = %v, want the set instant", alert.ScheduledTime())
	}
}

func TestValidateRejectsBadAlerts(t *testing.T) {
	scheduled := time.Unix(1700000000, 0)

	tests := []struct {
		name   string
		mutate func(a *Alert)
	}{
		{"empty token", func(a *Alert) { a.Token = "" }},
		{"bad type", func(a *Alert) { a.Type = "NAP" }},
		{"bad state", func(a *Alert) { a.State = "LOST" }},
		{"negative loop count", func(a *Alert) { a.AssetConfiguration.LoopCount = -1 }},
		{"negative loop pause", func(a *Alert) { a.AssetConfiguration.LoopPause = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := NewAlarm("ok", scheduled)
			tt.mutate(alert)
			if err := alert.Validate(); err == nil {
				t.Error("Validate() succeeded, want error")
			}
		})
	}
}

func TestSummary(t *testing.T) {
	alert := NewReminder("r1", time.Unix(1700000000, 0))
	alert.DatabaseID = 5
	alert.AssetConfiguration.AddAsset("chime", "https://cdn/chime.mp3")
	alert.AssetConfiguration.AppendPlayOrderToken("chime")

	short := alert.Summary(false)
	if !strings.Contains(short, "REMINDER") || !strings.Contains(short, "token=r1") {
		t.Errorf("Summary(false) = %q, missing basics", short)
	}
	if strings.Contains(short, "chime") {
		t.Errorf("Summary(false) includes asset detail: %q", short)
	}

	full := alert.Summary(true)
	if !strings.Contains(full, "chime -> https://cdn/chime.mp3") {
		t.Errorf("Summary(true) missing asset catalog: %q", full)
	}
	if !strings.Contains(full, "play order: chime") {
		t.Errorf("Summary(true) missing play order: %q", full)
	}
}
