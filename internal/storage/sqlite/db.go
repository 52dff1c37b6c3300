// ABOUTME: SQLite database connection and low-level table helpers
// ABOUTME: Uses modernc.org/sqlite for pure-Go SQLite support
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// querier is satisfied by both *sql.DB and *sql.Tx so table helpers can run
// inside or outside a transaction.
type querier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// DefaultDataDir returns the default data directory for the alert database
// following the XDG spec.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".local/share/alertstore"
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataHome, "alertstore")
}

// DefaultDBPath returns the default database file path
func DefaultDBPath() string {
	return filepath.Join(DefaultDataDir(), "alerts.db")
}

// fileExists reports whether a file is present at path
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// openDatabase opens the SQLite file at path, creating it if absent
func openDatabase(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// tableExists reports whether a table with the given name exists
func tableExists(q querier, table string) (bool, error) {
	var count int
	err := q.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", table, err)
	}
	return count > 0, nil
}

// dropTable removes a table and its rows
func dropTable(q querier, table string) error {
	if _, err := q.Exec("DROP TABLE " + table); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", table, err)
	}
	return nil
}

// clearTable deletes every row from a table, preserving the schema
func clearTable(q querier, table string) error {
	if _, err := q.Exec("DELETE FROM " + table); err != nil {
		return fmt.Errorf("failed to clear table %s: %w", table, err)
	}
	return nil
}

// tableMaxIntValue returns the maximum value of an integer column, or zero
// when the table is empty.
func tableMaxIntValue(q querier, table, column string) (int, error) {
	var max int
	err := q.QueryRow("SELECT COALESCE(MAX(" + column + "), 0) FROM " + table).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to read max %s.%s: %w", table, column, err)
	}
	return max, nil
}

// tableRowCount returns the number of rows in a table
func tableRowCount(q querier, table string) (int, error) {
	var count int
	err := q.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}
