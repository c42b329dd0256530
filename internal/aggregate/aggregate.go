// Package aggregate derives the per-shop statistics and the global
// journal view from the raw shops and logs collections. Pure functions
// over flat linear scans; the collections are small and single-user.
package aggregate

import (
	"math"
	"sort"

	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

// UnknownShopLabel is rendered for a log whose ShopID no longer resolves.
// Dangling references are tolerated, never an error.
const UnknownShopLabel = "未知店家"

// ShopStats summarizes the logs recorded at one shop.
type ShopStats struct {
	Count int
	// AvgRating is the mean rating rounded to one decimal place, or nil
	// when the shop has no logs yet ("unrated" rather than zero).
	AvgRating *float64
}

// JournalEntry is one row of the global journal: a log annotated with its
// shop's display name.
type JournalEntry struct {
	Log      types.BowlLog
	ShopName string
}

// Totals are the global collection cardinalities.
type Totals struct {
	Shops int
	Logs  int
}

// ShopLogs returns the logs recorded at shopID, most recent first. Ties on
// date keep the collection order.
func ShopLogs(logs []types.BowlLog, shopID string) []types.BowlLog {
	var filtered []types.BowlLog
	for _, log := range logs {
		if log.ShopID == shopID {
			filtered = append(filtered, log)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})
	return filtered
}

// StatsForShop computes the log count and mean rating for shopID. A shop
// with zero logs reports a nil average; there is no division by zero.
func StatsForShop(logs []types.BowlLog, shopID string) ShopStats {
	var (
		count int
		sum   float64
	)
	for _, log := range logs {
		if log.ShopID == shopID {
			count++
			sum += log.Rating
		}
	}
	if count == 0 {
		return ShopStats{}
	}
	avg := roundToTenth(sum / float64(count))
	return ShopStats{Count: count, AvgRating: &avg}
}

// Journal returns every log, most recent first, annotated with its shop's
// name or UnknownShopLabel when the ShopID dangles.
func Journal(shops []types.Shop, logs []types.BowlLog) []JournalEntry {
	names := make(map[string]string, len(shops))
	for _, shop := range shops {
		names[shop.ID] = shop.Name
	}

	entries := make([]JournalEntry, 0, len(logs))
	for _, log := range logs {
		name, ok := names[log.ShopID]
		if !ok || name == "" {
			name = UnknownShopLabel
		}
		entries = append(entries, JournalEntry{Log: log, ShopName: name})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Log.Date.After(entries[j].Log.Date)
	})
	return entries
}

// CollectionTotals returns the global shop and log counts.
func CollectionTotals(shops []types.Shop, logs []types.BowlLog) Totals {
	return Totals{Shops: len(shops), Logs: len(logs)}
}

// roundToTenth rounds half away from zero to one decimal place.
func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
