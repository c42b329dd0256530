package types

import "time"

// Shop represents a ramen establishment pinned at a geographic coordinate.
// Shops are immutable once created: there is no edit flow, and removal
// happens only through a full-collection overwrite in the store.
type Shop struct {
	ID        string    // UUID v7, generated on creation. Stable for the record's lifetime.
	Name      string    // Display name (required, non-empty at creation).
	Address   string    // Free-text address, may come from a geocoding result.
	Location  Location  // Map pin coordinate.
	CreatedAt time.Time // Timestamp of creation.
}
