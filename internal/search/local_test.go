package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

func TestLocal(t *testing.T) {
	shops := []types.Shop{
		{ID: "s1", Name: "隱家拉麵", Address: "台北市士林區"},
		{ID: "s2", Name: "鬼金棒", Address: "台北市中山區"},
		{ID: "s3", Name: "Mensho Tokyo", Address: "後楽園"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"empty query matches nothing", "", nil},
		{"name substring", "隱家", []string{"s1"}},
		{"full name", "隱家拉麵", []string{"s1"}},
		{"address substring", "台北市", []string{"s1", "s2"}},
		{"case-insensitive latin", "mensho", []string{"s3"}},
		{"no match", "一蘭", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Local(tt.query, shops)
			var ids []string
			for _, shop := range got {
				ids = append(ids, shop.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
