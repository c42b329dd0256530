package types

import "errors"

// Store lifecycle errors.
var (
	ErrStoreDetached     = errors.New("store is detached")
	ErrAlreadyAttached   = errors.New("store is already attached")
	ErrUnknownCollection = errors.New("unknown collection")
)

// Entity errors.
var (
	ErrNotFound    = errors.New("entity not found")
	ErrInvalidID   = errors.New("invalid entity ID")
	ErrInvalidName = errors.New("invalid name")
)

// ErrCorruptData is returned when a stored collection exists but cannot be
// parsed. Callers must treat this as fatal for the session rather than
// substituting an empty collection; an empty collection only ever comes
// from first-run seeding.
var ErrCorruptData = errors.New("stored collection is corrupt")
