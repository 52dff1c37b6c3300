// ABOUTME: AlertStorage defines the persistence contract for the alerts subsystem
// ABOUTME: Implemented by the SQLite backend in the sqlite subpackage
package storage

import (
	"errors"

	"github.com/harper/alertstore/internal/models"
)

// StatLevel controls how much detail PrintStats emits
type StatLevel int

const (
	// StatLevelOneLine prints only the number of stored alerts
	StatLevelOneLine StatLevel = iota
	// StatLevelAlertsSummary adds a per-alert summary line
	StatLevelAlertsSummary
	// StatLevelEverything adds asset catalogs and play orders
	StatLevelEverything
)

// Sentinel errors shared by all AlertStorage implementations. Callers match
// with errors.Is; implementations wrap them with operation context.
var (
	ErrDatabaseOpen    = errors.New("database handle is already open")
	ErrDatabaseNotOpen = errors.New("database handle is not open")
	ErrNilAlert        = errors.New("alert is nil")
	ErrTokenInUse      = errors.New("alert token already exists")
	ErrTokenNotFound   = errors.New("alert token not found")
	ErrAlertNotFound   = errors.New("alert id not found")
)

// AlertStorage is the durable store for user-scheduled alerts. A single
// instance owns at most one database handle and is not safe for concurrent
// use; the alerts subsystem serializes access externally.
type AlertStorage interface {
	// CreateDatabase creates a fresh database file with all tables. The
	// target file must not exist.
	CreateDatabase(path string) error

	// Open opens an existing database file, migrating legacy layouts to the
	// current schema as needed.
	Open(path string) error

	// IsOpen reports whether a database handle is bound
	IsOpen() bool

	// Close releases the database handle. Idempotent.
	Close() error

	// AlertExists reports whether an alert with the given token is stored
	AlertExists(token string) (bool, error)

	// Store inserts a new alert with its assets and play order, assigning a
	// fresh database id and writing it back into the alert.
	Store(alert *models.Alert) error

	// Modify updates the state and scheduled time of a stored alert. No
	// other fields are touched.
	Modify(alert *models.Alert) error

	// Erase removes a stored alert and all of its child rows
	Erase(alert *models.Alert) error

	// EraseByIDs removes the alerts with the given database ids. Every id
	// must name a stored alert or nothing is deleted.
	EraseByIDs(ids []int) error

	// Load returns all stored alerts with assets and play orders attached
	Load() ([]*models.Alert, error)

	// ClearDatabase removes every row from every table, keeping the schema
	ClearDatabase() error

	// PrintStats logs a read-only summary at the given verbosity
	PrintStats(level StatLevel) error
}
