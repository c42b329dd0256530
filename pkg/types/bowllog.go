package types

import (
	"math"
	"time"
)

// Noodle hardness options, hardest first.
var NoodleHardnessOptions = []string{"超硬", "硬", "普通", "軟", "超軟"}

// Soup concentration options, richest first.
var SoupConcentrationOptions = []string{"特濃", "濃", "普通", "淡", "清湯"}

// Back fat options, most first.
var BackFatOptions = []string{"多", "普通", "少", "無"}

// CompassMinRating is the rating threshold for a log to be eligible for
// compass selection.
const CompassMinRating = 4.0

// BowlLog is a single tasting record for one bowl ordered at a Shop.
// All fields except ID, ShopID, and Date are replaceable through the edit
// flow; logs are never deleted by any exposed operation.
type BowlLog struct {
	ID                string    // UUID v7, generated on creation.
	ShopID            string    // References a Shop. Not enforced; dangling refs are tolerated.
	ItemName          string    // Menu item name.
	Rating            float64   // Expected domain 1-5, half steps permitted. Not enforced at rest.
	NoodleHardness    string    // One of NoodleHardnessOptions by convention.
	SoupConcentration string    // One of SoupConcentrationOptions by convention.
	BackFat           string    // One of BackFatOptions by convention.
	Price             int       // Price paid, whole currency units.
	QueueTime         int       // Minutes spent queueing.
	Notes             string    // Free text, may be empty.
	Date              time.Time // Timestamp of the tasting. Fixed at creation.
	HasKaedama        bool      // Whether a noodle refill (替玉) was ordered.
}

// Eligible reports whether the log qualifies for compass selection.
func (b BowlLog) Eligible() bool {
	return b.Rating >= CompassMinRating
}

// ApplyEdit overwrites the replaceable fields of b with the values from
// edit, preserving ID, ShopID, and Date. The edit's values are taken as
// submitted; rating bounds and option-set membership are advisory and
// checked at the input layer, never here.
func (b *BowlLog) ApplyEdit(edit BowlLog) {
	edit.ID = b.ID
	edit.ShopID = b.ShopID
	edit.Date = b.Date
	*b = edit
}

// ValidNoodleHardness reports whether v is in the closed noodle hardness set.
func ValidNoodleHardness(v string) bool { return containsOption(NoodleHardnessOptions, v) }

// ValidSoupConcentration reports whether v is in the closed soup concentration set.
func ValidSoupConcentration(v string) bool { return containsOption(SoupConcentrationOptions, v) }

// ValidBackFat reports whether v is in the closed back fat set.
func ValidBackFat(v string) bool { return containsOption(BackFatOptions, v) }

// ValidRating reports whether r is a finite number. The 1-5 domain is an
// input-layer convention; the model accepts any finite value so that
// out-of-range stored data is preserved rather than clamped.
func ValidRating(r float64) bool {
	return !math.IsNaN(r) && !math.IsInf(r, 0)
}

func containsOption(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
