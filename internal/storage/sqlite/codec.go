// ABOUTME: Codec between domain enums and the integer codes persisted in rows
// ABOUTME: Codes are part of the on-disk contract and must never be renumbered
package sqlite

import (
	"fmt"

	"github.com/harper/alertstore/internal/models"
)

// Integer codes stored in the type column
const (
	alertTypeCodeAlarm    = 1
	alertTypeCodeTimer    = 2
	alertTypeCodeReminder = 3
)

// Integer codes stored in the state column. A new state gets the next free
// code (>= 11) together with a schema version bump.
const (
	alertStateCodeUnset      = 1
	alertStateCodeSet        = 2
	alertStateCodeActivating = 3
	alertStateCodeActive     = 4
	alertStateCodeSnoozing   = 5
	alertStateCodeSnoozed    = 6
	alertStateCodeStopping   = 7
	alertStateCodeStopped    = 8
	alertStateCodeCompleted  = 9
	alertStateCodeReady      = 10
)

var alertTypeToCode = map[models.AlertType]int{
	models.TypeAlarm:    alertTypeCodeAlarm,
	models.TypeTimer:    alertTypeCodeTimer,
	models.TypeReminder: alertTypeCodeReminder,
}

var alertStateToCode = map[models.AlertState]int{
	models.StateUnset:      alertStateCodeUnset,
	models.StateSet:        alertStateCodeSet,
	models.StateActivating: alertStateCodeActivating,
	models.StateActive:     alertStateCodeActive,
	models.StateSnoozing:   alertStateCodeSnoozing,
	models.StateSnoozed:    alertStateCodeSnoozed,
	models.StateStopping:   alertStateCodeStopping,
	models.StateStopped:    alertStateCodeStopped,
	models.StateCompleted:  alertStateCodeCompleted,
	models.StateReady:      alertStateCodeReady,
}

var codeToAlertType = invert(alertTypeToCode)
var codeToAlertState = invert(alertStateToCode)

func invert[K comparable](m map[K]int) map[int]K {
	out := make(map[int]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// encodeAlertType converts an alert type to its database code
func encodeAlertType(t models.AlertType) (int, error) {
	code, ok := alertTypeToCode[t]
	if !ok {
		return 0, fmt.Errorf("cannot encode alert type %q", t)
	}
	return code, nil
}

// decodeAlertType converts a database code back to an alert type
func decodeAlertType(code int) (models.AlertType, error) {
	t, ok := codeToAlertType[code]
	if !ok {
		return "", fmt.Errorf("cannot decode alert type code %d", code)
	}
	return t, nil
}

// encodeAlertState converts an alert state to its database code
func encodeAlertState(s models.AlertState) (int, error) {
	code, ok := alertStateToCode[s]
	if !ok {
		return 0, fmt.Errorf("cannot encode alert state %q", s)
	}
	return code, nil
}

// decodeAlertState converts a database code back to an alert state
func decodeAlertState(code int) (models.AlertState, error) {
	s, ok := codeToAlertState[code]
	if !ok {
		return "", fmt.Errorf("cannot decode alert state code %d", code)
	}
	return s, nil
}
