// Local shop matching for the search box.
package search

import (
	"strings"

	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

// Local returns the shops whose name or address contains query,
// case-insensitively, preserving the collection order. An empty query
// matches nothing rather than everything.
func Local(query string, shops []types.Shop) []types.Shop {
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)

	var matches []types.Shop
	for _, shop := range shops {
		if strings.Contains(strings.ToLower(shop.Name), needle) ||
			strings.Contains(strings.ToLower(shop.Address), needle) {
			matches = append(matches, shop)
		}
	}
	return matches
}
