// ABOUTME: Row assembler joining the three alert tables into domain objects
// ABOUTME: Columns are dispatched by name because SELECT * order is not guaranteed
package sqlite

import (
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/harper/alertstore/internal/models"
	"github.com/harper/alertstore/internal/storage"
)

// assetOrderItem pairs a playback token with its 1-based position
type assetOrderItem struct {
	position int
	token    string
}

// Load returns all stored alerts with assets and play orders attached
func (s *AlertStore) Load() ([]*models.Alert, error) {
	if s.db == nil {
		return nil, fmt.Errorf("load: %w", storage.ErrDatabaseNotOpen)
	}
	return loadHelper(s.db, databaseVersionTwo)
}

// loadHelper assembles alerts from the tables of the given schema version.
// The migration path calls it with version one to read the legacy table.
func loadHelper(q querier, version int) ([]*models.Alert, error) {
	table := alertsV2Table
	if version == databaseVersionOne {
		table = legacyAlertsTable
	} else if version != databaseVersionTwo {
		return nil, fmt.Errorf("load: invalid database version %d", version)
	}

	alerts, err := loadAlertRows(q, table)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	assetsByAlert, err := loadAlertAssets(q)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	orderByAlert, err := loadPlayOrderItems(q)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	for _, alert := range alerts {
		cfg := &alert.AssetConfiguration
		for _, asset := range assetsByAlert[alert.DatabaseID] {
			cfg.Assets[asset.AVSID] = asset
		}
		items := orderByAlert[alert.DatabaseID]
		sort.Slice(items, func(i, j int) bool { return items[i].position < items[j].position })
		for _, item := range items {
			cfg.PlayOrder = append(cfg.PlayOrder, item.token)
		}
	}

	return alerts, nil
}

// loadAlertRows reads all parent rows from the given alerts table. A column
// missing from a legacy layout (background_asset in V1) is left at its zero
// value.
func loadAlertRows(q querier, table string) ([]*models.Alert, error) {
	rows, err := q.Query("SELECT * FROM " + table)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", table, err)
	}

	var alerts []*models.Alert
	for rows.Next() {
		values := make([]interface{}, len(columns))
		for i := range values {
			values[i] = new(interface{})
		}
		if err := rows.Scan(values...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}

		var (
			id              int
			token           string
			typeCode        int
			stateCode       int
			scheduledUnix   int64
			scheduledISO    string
			loopCount       int
			loopPauseMillis int
			backgroundAsset string
		)

		for i, name := range columns {
			value := *(values[i].(*interface{}))
			switch name {
			case "id":
				id = int(columnInt(value))
			case "token":
				token = columnText(value)
			case "type":
				typeCode = int(columnInt(value))
			case "state":
				stateCode = int(columnInt(value))
			case "scheduled_time_unix":
				scheduledUnix = columnInt(value)
			case "scheduled_time_iso_8601":
				scheduledISO = columnText(value)
			case "asset_loop_count":
				loopCount = int(columnInt(value))
			case "asset_loop_pause_milliseconds":
				loopPauseMillis = int(columnInt(value))
			case "background_asset":
				backgroundAsset = columnText(value)
			}
		}

		alertType, err := decodeAlertType(typeCode)
		if err != nil {
			return nil, fmt.Errorf("row id %d: %w", id, err)
		}
		alertState, err := decodeAlertState(stateCode)
		if err != nil {
			return nil, fmt.Errorf("row id %d: %w", id, err)
		}

		alert := &models.Alert{
			DatabaseID:           id,
			Token:                token,
			Type:                 alertType,
			State:                alertState,
			ScheduledTimeUnix:    scheduledUnix,
			ScheduledTimeISO8601: scheduledISO,
			AssetConfiguration:   models.NewAssetConfiguration(),
		}
		alert.AssetConfiguration.LoopCount = loopCount
		alert.AssetConfiguration.LoopPause = millisToDuration(loopPauseMillis)
		alert.AssetConfiguration.BackgroundAssetID = backgroundAsset

		alerts = append(alerts, alert)
	}

	return alerts, rows.Err()
}

// loadAlertAssets reads every asset row and groups them by alert id
func loadAlertAssets(q querier) (map[int][]models.Asset, error) {
	rows, err := q.Query("SELECT * FROM " + alertAssetsTable)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", alertAssetsTable, err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", alertAssetsTable, err)
	}

	assetsByAlert := make(map[int][]models.Asset)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		for i := range values {
			values[i] = new(interface{})
		}
		if err := rows.Scan(values...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", alertAssetsTable, err)
		}

		var (
			alertID int
			avsID   string
			url     string
		)
		for i, name := range columns {
			value := *(values[i].(*interface{}))
			switch name {
			case "alert_id":
				alertID = int(columnInt(value))
			case "avs_id":
				avsID = columnText(value)
			case "url":
				url = columnText(value)
			}
		}

		assetsByAlert[alertID] = append(assetsByAlert[alertID], models.Asset{AVSID: avsID, URL: url})
	}

	return assetsByAlert, rows.Err()
}

// loadPlayOrderItems reads every play-order row and groups them by alert id.
// Items are sorted by position at attach time.
func loadPlayOrderItems(q querier) (map[int][]assetOrderItem, error) {
	rows, err := q.Query("SELECT * FROM " + playOrderTable)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", playOrderTable, err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", playOrderTable, err)
	}

	orderByAlert := make(map[int][]assetOrderItem)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		for i := range values {
			values[i] = new(interface{})
		}
		if err := rows.Scan(values...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", playOrderTable, err)
		}

		var item assetOrderItem
		var alertID int
		for i, name := range columns {
			value := *(values[i].(*interface{}))
			switch name {
			case "alert_id":
				alertID = int(columnInt(value))
			case "asset_play_order_position":
				item.position = int(columnInt(value))
			case "asset_play_order_token":
				item.token = columnText(value)
			}
		}

		orderByAlert[alertID] = append(orderByAlert[alertID], item)
	}

	return orderByAlert, rows.Err()
}

func millisToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// columnInt coerces a driver value to int64. SQLite's dynamic typing means a
// numeric column can surface as text when rows were written by another tool.
func columnInt(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case []byte:
		n, _ := strconv.ParseInt(string(v), 10, 64)
		return n
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	case sql.NullInt64:
		return v.Int64
	default:
		return 0
	}
}

// columnText coerces a driver value to a string
func columnText(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
