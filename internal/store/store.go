// Package store implements the persistence gateway for Ramen Reality.
// The shops and logs collections live in JSON array files under DataDir;
// those files are the source of truth. On Attach they are loaded into a
// scratch SQLite database which serves as the query engine, and every
// mutation rewrites the affected collection file in full before updating
// the database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

// dbFileName is the scratch database file, recreated on every Attach.
const dbFileName = "ramen.db"

// Store is the durable collection store. The zero value is not usable;
// call NewStore and Attach before use.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB

	// now is the clock used for seed timestamps. Overridable in tests.
	now func() time.Time
}

// NewStore creates a new store instance. The store is not attached; call
// Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Attach initializes the store with the given configuration. It creates
// DataDir if needed, rebuilds the scratch database, and loads both
// collections, seeding the demo dataset for any collection whose file does
// not exist yet. Returns ErrAlreadyAttached if already attached, and
// ErrCorruptData (wrapped) if a collection file exists but cannot be
// parsed.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(config.DataDir, dbFileName)
	// Stale query state from a previous run is discarded; the JSON files
	// are authoritative.
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	s.db = db
	s.config = config

	if err := s.loadCollections(); err != nil {
		db.Close()
		s.db = nil
		return err
	}

	s.attached = true
	return nil
}

// Detach releases store resources. Idempotent: multiple calls succeed.
// After Detach, operations return ErrStoreDetached.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	s.attached = false
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		s.db = nil
	}
	return nil
}

// collectionPath returns the file backing the named collection, or
// ErrUnknownCollection for a name outside the standard set.
func (s *Store) collectionPath(name string) (string, error) {
	switch name {
	case types.ShopsCollection:
		return filepath.Join(s.config.DataDir, shopsFile), nil
	case types.LogsCollection:
		return filepath.Join(s.config.DataDir, logsFile), nil
	default:
		return "", fmt.Errorf("%w: %s", types.ErrUnknownCollection, name)
	}
}

// loadCollections reads both collection files into the database, seeding
// and persisting the demo dataset for absent files. Called under s.mu.
func (s *Store) loadCollections() error {
	shopsPath, err := s.collectionPath(types.ShopsCollection)
	if err != nil {
		return err
	}
	logsPath, err := s.collectionPath(types.LogsCollection)
	if err != nil {
		return err
	}

	var shopRecords []shopJSON
	exists, err := readCollectionFile(shopsPath, &shopRecords)
	if err != nil {
		return err
	}
	if !exists {
		// First run: persist the seed before serving it, so a second load
		// returns the same records rather than a fresh generation.
		for _, shop := range demoShops(s.now().UTC()) {
			shopRecords = append(shopRecords, shopToJSON(shop))
		}
		if err := writeCollectionFile(shopsPath, shopRecords); err != nil {
			return fmt.Errorf("seeding shops: %w", err)
		}
	}

	var logRecords []logJSON
	exists, err = readCollectionFile(logsPath, &logRecords)
	if err != nil {
		return err
	}
	if !exists {
		for _, log := range demoLogs(s.now().UTC()) {
			logRecords = append(logRecords, logToJSON(log))
		}
		if err := writeCollectionFile(logsPath, logRecords); err != nil {
			return fmt.Errorf("seeding logs: %w", err)
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	for _, rec := range shopRecords {
		if err := insertShop(tx, shopFromJSON(rec)); err != nil {
			return fmt.Errorf("loading shop %s: %w", rec.ID, err)
		}
	}
	for _, rec := range logRecords {
		if err := insertLog(tx, logFromJSON(rec)); err != nil {
			return fmt.Errorf("loading log %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

// execer is the subset of sql.DB/sql.Tx used by row insert helpers.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertShop(e execer, shop types.Shop) error {
	_, err := e.Exec(
		"INSERT INTO shops (shop_id, name, address, lat, lng, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		shop.ID, shop.Name, shop.Address, shop.Location.Lat, shop.Location.Lng, shop.CreatedAt.UnixMilli(),
	)
	return err
}

func insertLog(e execer, log types.BowlLog) error {
	hasKaedama := 0
	if log.HasKaedama {
		hasKaedama = 1
	}
	_, err := e.Exec(
		`INSERT INTO logs (log_id, shop_id, item_name, rating, noodle_hardness,
		    soup_concentration, back_fat, price, queue_time, notes, date, has_kaedama)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		log.ID, log.ShopID, log.ItemName, log.Rating, log.NoodleHardness,
		log.SoupConcentration, log.BackFat, log.Price, log.QueueTime,
		log.Notes, log.Date.UnixMilli(), hasKaedama,
	)
	return err
}
