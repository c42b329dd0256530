package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationIsFinite(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want bool
	}{
		{"taipei", Location{Lat: 25.0330, Lng: 121.5654}, true},
		{"zero value", Location{}, true},
		{"nan lat", Location{Lat: math.NaN(), Lng: 121.5}, false},
		{"inf lng", Location{Lat: 25.0, Lng: math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loc.IsFinite())
		})
	}
}
