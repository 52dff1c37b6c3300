// ABOUTME: Tests for the diagnostic summary output
// ABOUTME: Captures log output to verify counts and per-alert lines
package sqlite

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/harper/alertstore/internal/storage"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestPrintStatsOneLine(t *testing.T) {
	store := newTestStore(t)
	if err := store.Store(sampleAlarm("t1")); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	buf := captureLog(t)
	if err := store.PrintStats(storage.StatLevelOneLine); err != nil {
		t.Fatalf("PrintStats() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "number of alerts: 1") {
		t.Errorf("output missing count line: %q", out)
	}
	if strings.Contains(out, "t1") {
		t.Errorf("one-line output should not list alerts: %q", out)
	}
}

func TestPrintStatsSummaryLevels(t *testing.T) {
	store := newTestStore(t)
	if err := store.Store(sampleAlarm("t1")); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	buf := captureLog(t)
	if err := store.PrintStats(storage.StatLevelAlertsSummary); err != nil {
		t.Fatalf("PrintStats(summary) error = %v", err)
	}
	summary := buf.String()
	if !strings.Contains(summary, "token=t1") {
		t.Errorf("summary output missing alert line: %q", summary)
	}
	if strings.Contains(summary, "play order") {
		t.Errorf("summary output should not include asset detail: %q", summary)
	}

	buf.Reset()
	if err := store.PrintStats(storage.StatLevelEverything); err != nil {
		t.Fatalf("PrintStats(everything) error = %v", err)
	}
	everything := buf.String()
	if !strings.Contains(everything, "play order") {
		t.Errorf("everything output missing play order: %q", everything)
	}
	if !strings.Contains(everything, "asset a1") {
		t.Errorf("everything output missing asset catalog: %q", everything)
	}
}

func TestPrintStatsRequiresOpenHandle(t *testing.T) {
	store := NewAlertStore()
	if err := store.PrintStats(storage.StatLevelOneLine); err == nil {
		t.Error("PrintStats() on closed store succeeded, want error")
	}
}
