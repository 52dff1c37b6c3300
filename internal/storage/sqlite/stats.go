// ABOUTME: Read-only diagnostic summaries of the alert database
// ABOUTME: Three verbosity levels, all piggy-backing on the load path
package sqlite

import (
	"fmt"
	"log"

	"github.com/harper/alertstore/internal/storage"
)

// PrintStats logs a summary of the database contents at the given verbosity
func (s *AlertStore) PrintStats(level storage.StatLevel) error {
	if s.db == nil {
		return fmt.Errorf("print stats: %w", storage.ErrDatabaseNotOpen)
	}

	count, err := tableRowCount(s.db, alertsV2Table)
	if err != nil {
		return fmt.Errorf("print stats: %w", err)
	}
	log.Printf("[AlertStorage] number of alerts: %d", count)

	if level == storage.StatLevelOneLine {
		return nil
	}

	alerts, err := s.Load()
	if err != nil {
		return fmt.Errorf("print stats: %w", err)
	}

	detail := level == storage.StatLevelEverything
	for _, alert := range alerts {
		log.Printf("[AlertStorage] %s", alert.Summary(detail))
	}

	return nil
}
