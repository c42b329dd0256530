// Logs collection accessors. Same discipline as the shops table: SQLite
// answers queries, mutations rewrite logs.json in full.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

const logColumns = `log_id, shop_id, item_name, rating, noodle_hardness,
	soup_concentration, back_fat, price, queue_time, notes, date, has_kaedama`

// Logs returns the full logs collection in its stored order.
func (s *Store) Logs() ([]types.BowlLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	return s.queryLogs("SELECT " + logColumns + " FROM logs ORDER BY rowid")
}

// LogByID retrieves a bowl log by ID. Returns ErrInvalidID if id is empty
// and ErrNotFound if no log has the ID.
func (s *Store) LogByID(id string) (types.BowlLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return types.BowlLog{}, types.ErrStoreDetached
	}
	if id == "" {
		return types.BowlLog{}, types.ErrInvalidID
	}

	row := s.db.QueryRow("SELECT "+logColumns+" FROM logs WHERE log_id = ?", id)
	log, err := scanLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.BowlLog{}, types.ErrNotFound
	}
	if err != nil {
		return types.BowlLog{}, fmt.Errorf("getting log %s: %w", id, err)
	}
	return log, nil
}

// LogsForShop returns the logs recorded at the given shop, most recent
// first. Ties on date keep the stored collection order.
func (s *Store) LogsForShop(shopID string) ([]types.BowlLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	return s.queryLogs(
		"SELECT "+logColumns+" FROM logs WHERE shop_id = ? ORDER BY date DESC, rowid ASC",
		shopID,
	)
}

// EligibleLogs returns the logs whose rating meets the compass threshold,
// in stored collection order.
func (s *Store) EligibleLogs() ([]types.BowlLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	return s.queryLogs(
		"SELECT "+logColumns+" FROM logs WHERE rating >= ? ORDER BY rowid",
		types.CompassMinRating,
	)
}

// AppendLog adds a bowl log to the collection and persists the result.
// The caller supplies ID, ShopID, and Date.
func (s *Store) AppendLog(log types.BowlLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	if log.ID == "" {
		return types.ErrInvalidID
	}

	logs, err := s.allLogsLocked()
	if err != nil {
		return err
	}
	return s.saveLogsLocked(append(logs, log))
}

// UpdateLog replaces the replaceable fields of the stored log with edit's
// values, keeping the stored ID, ShopID, and Date. The log is addressed by
// edit.ID; returns ErrNotFound if no such log exists.
func (s *Store) UpdateLog(edit types.BowlLog) (types.BowlLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.BowlLog{}, types.ErrStoreDetached
	}
	if edit.ID == "" {
		return types.BowlLog{}, types.ErrInvalidID
	}

	logs, err := s.allLogsLocked()
	if err != nil {
		return types.BowlLog{}, err
	}

	var updated *types.BowlLog
	for i := range logs {
		if logs[i].ID == edit.ID {
			logs[i].ApplyEdit(edit)
			updated = &logs[i]
			break
		}
	}
	if updated == nil {
		return types.BowlLog{}, types.ErrNotFound
	}

	if err := s.saveLogsLocked(logs); err != nil {
		return types.BowlLog{}, err
	}
	return *updated, nil
}

// SaveLogs replaces the entire logs collection with the supplied value.
func (s *Store) SaveLogs(logs []types.BowlLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	return s.saveLogsLocked(logs)
}

// saveLogsLocked writes logs.json and rebuilds the logs table.
// Called under s.mu.
func (s *Store) saveLogsLocked(logs []types.BowlLog) error {
	path, err := s.collectionPath(types.LogsCollection)
	if err != nil {
		return err
	}

	records := make([]logJSON, 0, len(logs))
	for _, log := range logs {
		records = append(records, logToJSON(log))
	}
	if err := writeCollectionFile(path, records); err != nil {
		return fmt.Errorf("saving logs: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning logs rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM logs"); err != nil {
		return fmt.Errorf("clearing logs table: %w", err)
	}
	for _, log := range logs {
		if err := insertLog(tx, log); err != nil {
			return fmt.Errorf("inserting log %s: %w", log.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing logs rebuild: %w", err)
	}
	return nil
}

// allLogsLocked queries the full collection without taking the lock.
func (s *Store) allLogsLocked() ([]types.BowlLog, error) {
	return s.queryLogs("SELECT " + logColumns + " FROM logs ORDER BY rowid")
}

// queryLogs runs a SELECT over the log columns and hydrates the rows.
func (s *Store) queryLogs(query string, args ...any) ([]types.BowlLog, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying logs: %w", err)
	}
	defer rows.Close()

	var logs []types.BowlLog
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

// scanLog hydrates one logs row into a types.BowlLog.
func scanLog(row rowScanner) (types.BowlLog, error) {
	var (
		log        types.BowlLog
		date       int64
		hasKaedama int
	)
	err := row.Scan(&log.ID, &log.ShopID, &log.ItemName, &log.Rating,
		&log.NoodleHardness, &log.SoupConcentration, &log.BackFat,
		&log.Price, &log.QueueTime, &log.Notes, &date, &hasKaedama)
	if err != nil {
		return types.BowlLog{}, err
	}
	log.Date = time.UnixMilli(date).UTC()
	log.HasKaedama = hasKaedama != 0
	return log, nil
}
