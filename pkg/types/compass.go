package types

// CompassResult pairs the chosen bowl with the shop that serves it.
// Surfaced by the compass only when the shop still exists.
type CompassResult struct {
	Shop Shop
	Bowl BowlLog
}
