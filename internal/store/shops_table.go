// Shops collection accessors. Reads go through the SQLite query engine;
// every mutation rewrites shops.json in full (last-write-wins) and then
// rebuilds the shops table from the new collection.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

const shopColumns = "shop_id, name, address, lat, lng, created_at"

// Shops returns the full shops collection in its stored order.
func (s *Store) Shops() ([]types.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := s.db.Query("SELECT " + shopColumns + " FROM shops ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("querying shops: %w", err)
	}
	defer rows.Close()

	var shops []types.Shop
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, err
		}
		shops = append(shops, shop)
	}
	return shops, rows.Err()
}

// ShopByID retrieves a shop by ID. Returns ErrInvalidID if id is empty and
// ErrNotFound if no shop has the ID.
func (s *Store) ShopByID(id string) (types.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return types.Shop{}, types.ErrStoreDetached
	}
	if id == "" {
		return types.Shop{}, types.ErrInvalidID
	}

	row := s.db.QueryRow("SELECT "+shopColumns+" FROM shops WHERE shop_id = ?", id)
	shop, err := scanShop(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Shop{}, types.ErrNotFound
	}
	if err != nil {
		return types.Shop{}, fmt.Errorf("getting shop %s: %w", id, err)
	}
	return shop, nil
}

// AppendShop adds a shop to the collection and persists the result.
// The caller supplies the ID and CreatedAt; returns ErrInvalidID or
// ErrInvalidName when they are missing.
func (s *Store) AppendShop(shop types.Shop) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	if shop.ID == "" {
		return types.ErrInvalidID
	}
	if shop.Name == "" {
		return types.ErrInvalidName
	}

	shops, err := s.allShopsLocked()
	if err != nil {
		return err
	}
	return s.saveShopsLocked(append(shops, shop))
}

// SaveShops replaces the entire shops collection with the supplied value.
// There is no merge: the stored collection becomes exactly shops.
func (s *Store) SaveShops(shops []types.Shop) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	return s.saveShopsLocked(shops)
}

// saveShopsLocked writes shops.json and rebuilds the shops table.
// Called under s.mu.
func (s *Store) saveShopsLocked(shops []types.Shop) error {
	path, err := s.collectionPath(types.ShopsCollection)
	if err != nil {
		return err
	}

	records := make([]shopJSON, 0, len(shops))
	for _, shop := range shops {
		records = append(records, shopToJSON(shop))
	}
	if err := writeCollectionFile(path, records); err != nil {
		return fmt.Errorf("saving shops: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning shops rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM shops"); err != nil {
		return fmt.Errorf("clearing shops table: %w", err)
	}
	for _, shop := range shops {
		if err := insertShop(tx, shop); err != nil {
			return fmt.Errorf("inserting shop %s: %w", shop.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing shops rebuild: %w", err)
	}
	return nil
}

// allShopsLocked queries the full collection without taking the lock.
func (s *Store) allShopsLocked() ([]types.Shop, error) {
	rows, err := s.db.Query("SELECT " + shopColumns + " FROM shops ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("querying shops: %w", err)
	}
	defer rows.Close()

	var shops []types.Shop
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, err
		}
		shops = append(shops, shop)
	}
	return shops, rows.Err()
}

// rowScanner abstracts sql.Row and sql.Rows for hydration helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanShop hydrates one shops row into a types.Shop.
func scanShop(row rowScanner) (types.Shop, error) {
	var (
		shop      types.Shop
		createdAt int64
	)
	err := row.Scan(&shop.ID, &shop.Name, &shop.Address,
		&shop.Location.Lat, &shop.Location.Lng, &createdAt)
	if err != nil {
		return types.Shop{}, err
	}
	shop.CreatedAt = time.UnixMilli(createdAt).UTC()
	return shop, nil
}
