// ABOUTME: SQLite schema for the alert database
// ABOUTME: Table names, column names, and DDL are the on-disk compatibility contract
package sqlite

// Symbolic names for the supported database layouts. Version is inferred
// from table presence: alerts_v2 present means V2, otherwise a legacy
// alerts table means V1.
const (
	databaseVersionOne = 1
	databaseVersionTwo = 2
)

// Table names. alertsV2Table is the only write target; legacyAlertsTable
// exists solely so V1 files can be migrated on open.
const (
	legacyAlertsTable = "alerts"
	alertsV2Table     = "alerts_v2"
	alertAssetsTable  = "alertAssets"
	playOrderTable    = "alertAssetPlayOrderItems"
	idColumn          = "id"
)

// createAlertsTableSQL creates the V2 alerts table. All columns are NOT NULL;
// the token uniqueness invariant is enforced by the storage layer, not by a
// UNIQUE constraint.
const createAlertsTableSQL = `CREATE TABLE ` + alertsV2Table + ` (
	id INT PRIMARY KEY NOT NULL,
	token TEXT NOT NULL,
	type INT NOT NULL,
	state INT NOT NULL,
	scheduled_time_unix INT NOT NULL,
	scheduled_time_iso_8601 TEXT NOT NULL,
	asset_loop_count INT NOT NULL,
	asset_loop_pause_milliseconds INT NOT NULL,
	background_asset TEXT NOT NULL);`

const createAlertAssetsTableSQL = `CREATE TABLE ` + alertAssetsTable + ` (
	id INT PRIMARY KEY NOT NULL,
	alert_id INT NOT NULL,
	avs_id TEXT NOT NULL,
	url TEXT NOT NULL);`

const createPlayOrderTableSQL = `CREATE TABLE ` + playOrderTable + ` (
	id INT PRIMARY KEY NOT NULL,
	alert_id INT NOT NULL,
	asset_play_order_position INT NOT NULL,
	asset_play_order_token TEXT NOT NULL);`
