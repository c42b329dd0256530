package types

import "math"

// Location is a geographic coordinate pair. It is treated as opaque data:
// no range validation beyond the coordinates being finite numbers.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsFinite reports whether both coordinates are finite numbers.
func (l Location) IsFinite() bool {
	return !math.IsNaN(l.Lat) && !math.IsInf(l.Lat, 0) &&
		!math.IsNaN(l.Lng) && !math.IsInf(l.Lng, 0)
}
