// ABOUTME: AlertStore is the SQLite-backed repository for user-scheduled alerts
// ABOUTME: Owns the database handle and implements the storage.AlertStorage contract
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/harper/alertstore/internal/models"
	"github.com/harper/alertstore/internal/storage"
)

// AlertStore persists alerts in a single SQLite file. It is single-owner of
// the handle and not safe for concurrent calls; callers serialize access.
type AlertStore struct {
	db   *sql.DB
	path string
}

// NewAlertStore creates an AlertStore with no database handle bound. Bind one
// with CreateDatabase or Open.
func NewAlertStore() *AlertStore {
	return &AlertStore{}
}

// CreateDatabase creates a fresh database file at path with all three tables.
// The file must not already exist. On a partial failure the handle is closed
// and the file left behind is treated as corrupt by callers.
func (s *AlertStore) CreateDatabase(path string) error {
	if s.db != nil {
		return fmt.Errorf("create database: %w", storage.ErrDatabaseOpen)
	}
	if fileExists(path) {
		return fmt.Errorf("create database: file %s already exists", path)
	}

	conn, err := openDatabase(path)
	if err != nil {
		return fmt.Errorf("create database: %w", err)
	}

	for _, ddl := range []string{createAlertsTableSQL, createAlertAssetsTableSQL, createPlayOrderTableSQL} {
		if _, err := conn.Exec(ddl); err != nil {
			_ = conn.Close()
			return fmt.Errorf("create database: %w", err)
		}
	}

	s.db = conn
	s.path = path
	return nil
}

// Open opens an existing database file and migrates legacy layouts to the
// current schema.
func (s *AlertStore) Open(path string) error {
	if s.db != nil {
		return fmt.Errorf("open: %w", storage.ErrDatabaseOpen)
	}
	if !fileExists(path) {
		return fmt.Errorf("open: file %s does not exist", path)
	}

	conn, err := openDatabase(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	s.db = conn
	s.path = path

	if err := s.migrateV1ToV2(); err != nil {
		_ = s.Close()
		return fmt.Errorf("open: %w", err)
	}

	return nil
}

// OpenOrCreate opens the database at path, creating it when absent
func (s *AlertStore) OpenOrCreate(path string) error {
	if fileExists(path) {
		return s.Open(path)
	}
	return s.CreateDatabase(path)
}

// IsOpen reports whether a database handle is bound
func (s *AlertStore) IsOpen() bool {
	return s.db != nil
}

// Path returns the bound database file path, or "" when closed
func (s *AlertStore) Path() string {
	return s.path
}

// Close releases the database handle. Safe to call repeatedly.
func (s *AlertStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.path = ""
	return err
}

// AlertExists reports whether an alert with the given token is stored
func (s *AlertStore) AlertExists(token string) (bool, error) {
	if s.db == nil {
		return false, fmt.Errorf("alert exists: %w", storage.ErrDatabaseNotOpen)
	}
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM "+alertsV2Table+" WHERE token=?", token).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("alert exists: %w", err)
	}
	return count > 0, nil
}

// alertExistsByID reports whether an alert row with the given id exists
func alertExistsByID(q querier, id int) (bool, error) {
	var count int
	err := q.QueryRow("SELECT COUNT(*) FROM "+alertsV2Table+" WHERE id=?", id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("alert exists by id: %w", err)
	}
	return count > 0, nil
}

// Store inserts the alert with its asset catalog and play order, assigning a
// fresh database id and writing it back into the alert. The insert runs in a
// single transaction.
func (s *AlertStore) Store(alert *models.Alert) error {
	if s.db == nil {
		return fmt.Errorf("store: %w", storage.ErrDatabaseNotOpen)
	}
	if alert == nil {
		return fmt.Errorf("store: %w", storage.ErrNilAlert)
	}

	exists, err := s.AlertExists(alert.Token)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if exists {
		return fmt.Errorf("store token %q: %w", alert.Token, storage.ErrTokenInUse)
	}

	typeCode, err := encodeAlertType(alert.Type)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	stateCode, err := encodeAlertState(alert.State)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	maxID, err := tableMaxIntValue(tx, alertsV2Table, idColumn)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	id := maxID + 1

	cfg := &alert.AssetConfiguration
	_, err = tx.Exec(`INSERT INTO `+alertsV2Table+` (
		id, token, type, state,
		scheduled_time_unix, scheduled_time_iso_8601, asset_loop_count,
		asset_loop_pause_milliseconds, background_asset
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, alert.Token, typeCode, stateCode,
		alert.ScheduledTimeUnix, alert.ScheduledTimeISO8601, cfg.LoopCount,
		cfg.LoopPauseMilliseconds(), cfg.BackgroundAssetID)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if err := storeAlertAssets(tx, id, cfg); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := storePlayOrderItems(tx, id, cfg); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	alert.DatabaseID = id
	return nil
}

// storeAlertAssets inserts the asset catalog rows for an alert. Catalog keys
// are written in sorted order so row ids are deterministic.
func storeAlertAssets(q querier, alertID int, cfg *models.AssetConfiguration) error {
	if len(cfg.Assets) == 0 {
		return nil
	}

	maxID, err := tableMaxIntValue(q, alertAssetsTable, idColumn)
	if err != nil {
		return err
	}

	id := maxID + 1
	for _, avsID := range cfg.SortedAssetIDs() {
		asset := cfg.Assets[avsID]
		_, err := q.Exec(
			"INSERT INTO "+alertAssetsTable+" (id, alert_id, avs_id, url) VALUES (?, ?, ?, ?)",
			id, alertID, asset.AVSID, asset.URL)
		if err != nil {
			return err
		}
		id++
	}

	return nil
}

// storePlayOrderItems inserts the ordered playback rows for an alert.
// Positions are 1-based in list order.
func storePlayOrderItems(q querier, alertID int, cfg *models.AssetConfiguration) error {
	if len(cfg.PlayOrder) == 0 {
		return nil
	}

	maxID, err := tableMaxIntValue(q, playOrderTable, idColumn)
	if err != nil {
		return err
	}

	id := maxID + 1
	for position, token := range cfg.PlayOrder {
		_, err := q.Exec(
			"INSERT INTO "+playOrderTable+
				" (id, alert_id, asset_play_order_position, asset_play_order_token) VALUES (?, ?, ?, ?)",
			id, alertID, position+1, token)
		if err != nil {
			return err
		}
		id++
	}

	return nil
}

// Modify updates only the state and scheduled time of a stored alert. The
// alert must already be in the store; all other columns and child rows are
// left untouched.
func (s *AlertStore) Modify(alert *models.Alert) error {
	if s.db == nil {
		return fmt.Errorf("modify: %w", storage.ErrDatabaseNotOpen)
	}
	if alert == nil {
		return fmt.Errorf("modify: %w", storage.ErrNilAlert)
	}

	exists, err := s.AlertExists(alert.Token)
	if err != nil {
		return fmt.Errorf("modify: %w", err)
	}
	if !exists {
		return fmt.Errorf("modify token %q: %w", alert.Token, storage.ErrTokenNotFound)
	}

	stateCode, err := encodeAlertState(alert.State)
	if err != nil {
		return fmt.Errorf("modify: %w", err)
	}

	_, err = s.db.Exec(
		"UPDATE "+alertsV2Table+" SET state=?, scheduled_time_unix=?, scheduled_time_iso_8601=? WHERE id=?",
		stateCode, alert.ScheduledTimeUnix, alert.ScheduledTimeISO8601, alert.DatabaseID)
	if err != nil {
		return fmt.Errorf("modify: %w", err)
	}

	return nil
}

// eraseAlertByID removes the rows for one alert from all three tables
func eraseAlertByID(q querier, id int) error {
	if _, err := q.Exec("DELETE FROM "+alertsV2Table+" WHERE id=?", id); err != nil {
		return fmt.Errorf("erase alert row: %w", err)
	}
	if _, err := q.Exec("DELETE FROM "+alertAssetsTable+" WHERE alert_id=?", id); err != nil {
		return fmt.Errorf("erase alert assets: %w", err)
	}
	if _, err := q.Exec("DELETE FROM "+playOrderTable+" WHERE alert_id=?", id); err != nil {
		return fmt.Errorf("erase play order items: %w", err)
	}
	return nil
}

// Erase removes a stored alert and all of its child rows in one transaction
func (s *AlertStore) Erase(alert *models.Alert) error {
	if s.db == nil {
		return fmt.Errorf("erase: %w", storage.ErrDatabaseNotOpen)
	}
	if alert == nil {
		return fmt.Errorf("erase: %w", storage.ErrNilAlert)
	}

	exists, err := s.AlertExists(alert.Token)
	if err != nil {
		return fmt.Errorf("erase: %w", err)
	}
	if !exists {
		return fmt.Errorf("erase token %q: %w", alert.Token, storage.ErrTokenNotFound)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("erase: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := eraseAlertByID(tx, alert.DatabaseID); err != nil {
		return fmt.Errorf("erase: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("erase: %w", err)
	}
	return nil
}

// EraseByIDs removes the alerts with the given database ids. All ids are
// validated before any row is deleted, so a missing id leaves the store
// unchanged.
func (s *AlertStore) EraseByIDs(ids []int) error {
	if s.db == nil {
		return fmt.Errorf("erase ids: %w", storage.ErrDatabaseNotOpen)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("erase ids: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, id := range ids {
		exists, err := alertExistsByID(tx, id)
		if err != nil {
			return fmt.Errorf("erase ids: %w", err)
		}
		if !exists {
			return fmt.Errorf("erase id %d: %w", id, storage.ErrAlertNotFound)
		}
	}

	for _, id := range ids {
		if err := eraseAlertByID(tx, id); err != nil {
			return fmt.Errorf("erase ids: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("erase ids: %w", err)
	}
	return nil
}

// ClearDatabase removes every row from every table, keeping the schema
func (s *AlertStore) ClearDatabase() error {
	if s.db == nil {
		return fmt.Errorf("clear database: %w", storage.ErrDatabaseNotOpen)
	}

	for _, table := range []string{alertsV2Table, alertAssetsTable, playOrderTable} {
		if err := clearTable(s.db, table); err != nil {
			return fmt.Errorf("clear database: %w", err)
		}
	}
	return nil
}

// compile-time check that AlertStore satisfies the storage contract
var _ storage.AlertStorage = (*AlertStore)(nil)
