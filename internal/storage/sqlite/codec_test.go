// ABOUTME: Tests for the enum-to-integer codec
// ABOUTME: Codes are an on-disk contract and must stay stable
package sqlite

import (
	"testing"

	"github.com/harper/alertstore/internal/models"
)

func TestAlertTypeCodes(t *testing.T) {
	tests := []struct {
		alertType models.AlertType
		code      int
	}{
		{models.TypeAlarm, 1},
		{models.TypeTimer, 2},
		{models.TypeReminder, 3},
	}

	for _, tt := range tests {
		code, err := encodeAlertType(tt.alertType)
		if err != nil {
			t.Fatalf("encodeAlertType(%s) error = %v", tt.alertType, err)
		}
		if code != tt.code {
			t.Errorf("encodeAlertType(%s) = %d, want %d", tt.alertType, code, tt.code)
		}

		back, err := decodeAlertType(tt.code)
		if err != nil {
			t.Fatalf("decodeAlertType(%d) error = %v", tt.code, err)
		}
		if back != tt.alertType {
			t.Errorf("decodeAlertType(%d) = %s, want %s", tt.code, back, tt.alertType)
		}
	}
}

func TestAlertStateCodes(t *testing.T) {
	// The persisted codes follow the declaration order of AllStates
	for i, state := range models.AllStates {
		wantCode := i + 1

		code, err := encodeAlertState(state)
		if err != nil {
			t.Fatalf("encodeAlertState(%s) error = %v", state, err)
		}
		if code != wantCode {
			t.Errorf("encodeAlertState(%s) = %d, want %d", state, code, wantCode)
		}

		back, err := decodeAlertState(wantCode)
		if err != nil {
			t.Fatalf("decodeAlertState(%d) error = %v", wantCode, err)
		}
		if back != state {
			t.Errorf("decodeAlertState(%d) = %s, want %s", wantCode, back, state)
		}
	}
}

func TestCodecRejectsUnknownValues(t *testing.T) {
	if _, err := encodeAlertType("GONG"); err == nil {
		t.Error("encodeAlertType(GONG) succeeded, want error")
	}
	if _, err := decodeAlertType(0); err == nil {
		t.Error("decodeAlertType(0) succeeded, want error")
	}
	if _, err := decodeAlertType(4); err == nil {
		t.Error("decodeAlertType(4) succeeded, want error")
	}
	if _, err := encodeAlertState("PONDERING"); err == nil {
		t.Error("encodeAlertState(PONDERING) succeeded, want error")
	}
	if _, err := decodeAlertState(11); err == nil {
		t.Error("decodeAlertState(11) succeeded, want error")
	}
}
