package types

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBowlLogApplyEdit(t *testing.T) {
	date := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	original := BowlLog{
		ID:                "log-7",
		ShopID:            "shop-3",
		ItemName:          "豚骨拉麵",
		Rating:            4,
		NoodleHardness:    "硬",
		SoupConcentration: "濃",
		BackFat:           "普通",
		Price:             250,
		QueueTime:         20,
		Notes:             "好吃",
		Date:              date,
		HasKaedama:        false,
	}

	edit := BowlLog{
		ID:                "should-be-ignored",
		ShopID:            "also-ignored",
		ItemName:          "特製豚骨",
		Rating:            4.5,
		NoodleHardness:    "超硬",
		SoupConcentration: "特濃",
		BackFat:           "多",
		Price:             300,
		QueueTime:         35,
		Notes:             "加蛋更好",
		Date:              date.Add(48 * time.Hour),
		HasKaedama:        true,
	}

	log := original
	log.ApplyEdit(edit)

	assert.Equal(t, original.ID, log.ID, "ID must be preserved")
	assert.Equal(t, original.ShopID, log.ShopID, "ShopID must be preserved")
	assert.Equal(t, original.Date, log.Date, "Date must be preserved")

	assert.Equal(t, "特製豚骨", log.ItemName)
	assert.Equal(t, 4.5, log.Rating)
	assert.Equal(t, "超硬", log.NoodleHardness)
	assert.Equal(t, "特濃", log.SoupConcentration)
	assert.Equal(t, "多", log.BackFat)
	assert.Equal(t, 300, log.Price)
	assert.Equal(t, 35, log.QueueTime)
	assert.Equal(t, "加蛋更好", log.Notes)
	assert.True(t, log.HasKaedama)
}

func TestBowlLogEligible(t *testing.T) {
	tests := []struct {
		name   string
		rating float64
		want   bool
	}{
		{"five stars", 5, true},
		{"threshold exactly", 4, true},
		{"half step above threshold", 4.5, true},
		{"just below threshold", 3.5, false},
		{"one star", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := BowlLog{Rating: tt.rating}
			assert.Equal(t, tt.want, log.Eligible())
		})
	}
}

func TestOptionSetValidation(t *testing.T) {
	for _, o := range NoodleHardnessOptions {
		assert.True(t, ValidNoodleHardness(o), o)
	}
	for _, o := range SoupConcentrationOptions {
		assert.True(t, ValidSoupConcentration(o), o)
	}
	for _, o := range BackFatOptions {
		assert.True(t, ValidBackFat(o), o)
	}

	assert.False(t, ValidNoodleHardness("extra firm"))
	assert.False(t, ValidSoupConcentration(""))
	assert.False(t, ValidBackFat("437"))
}

func TestValidRating(t *testing.T) {
	assert.True(t, ValidRating(4.5))
	assert.True(t, ValidRating(1))
	// Out-of-range values are still valid at rest; clamping is an input
	// concern, never a model concern.
	assert.True(t, ValidRating(0))
	assert.True(t, ValidRating(11))
	assert.False(t, ValidRating(math.NaN()))
	assert.False(t, ValidRating(math.Inf(1)))
}
