// ABOUTME: One-way migration from the legacy V1 alerts layout to V2
// ABOUTME: Runs on every open; a V2 table present means nothing to do
package sqlite

import (
	"fmt"
	"log"
)

// migrateV1ToV2 brings the open database to the V2 layout. Legacy rows are
// re-inserted through the standard store pipeline, which assigns fresh V2
// ids, then the legacy table is dropped. The steps are not atomic as a
// whole: a crash after some re-inserts leaves a readable V2 store and the
// legacy table is dropped on the next open.
func (s *AlertStore) migrateV1ToV2() error {
	v2Exists, err := tableExists(s.db, alertsV2Table)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if v2Exists {
		return nil
	}

	if _, err := s.db.Exec(createAlertsTableSQL); err != nil {
		return fmt.Errorf("migrate: create %s: %w", alertsV2Table, err)
	}

	for table, ddl := range map[string]string{
		alertAssetsTable: createAlertAssetsTableSQL,
		playOrderTable:   createPlayOrderTableSQL,
	} {
		exists, err := tableExists(s.db, table)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		if !exists {
			if _, err := s.db.Exec(ddl); err != nil {
				return fmt.Errorf("migrate: create %s: %w", table, err)
			}
		}
	}

	// An old database is expected to carry the legacy table, but a file
	// holding only child tables is already fully migrated.
	legacyExists, err := tableExists(s.db, legacyAlertsTable)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if !legacyExists {
		return nil
	}

	alerts, err := loadHelper(s.db, databaseVersionOne)
	if err != nil {
		return fmt.Errorf("migrate: load legacy rows: %w", err)
	}

	for _, alert := range alerts {
		alert.DatabaseID = 0
		if err := s.Store(alert); err != nil {
			return fmt.Errorf("migrate: store legacy alert %q: %w", alert.Token, err)
		}
	}

	if err := dropTable(s.db, legacyAlertsTable); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[AlertStorage] migrated %d alerts from V1 to V2", len(alerts))
	return nil
}
