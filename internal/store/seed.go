// Demo dataset seeding on first run. Seeding is detected by file absence:
// a collection file that exists, even as an empty array, is never reseeded.
package store

import (
	"time"

	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

// Fixed IDs for the demo records. Stable so that a reseeded store is
// distinguishable from a regenerated one.
const (
	demoShopID1 = "demo-1"
	demoShopID2 = "demo-2"
	demoLogID1  = "log-1"
	demoLogID2  = "log-2"
)

// demoShops returns the two-shop demo dataset.
func demoShops(now time.Time) []types.Shop {
	return []types.Shop{
		{
			ID:        demoShopID1,
			Name:      "隱家拉麵",
			Location:  types.Location{Lat: 25.0931, Lng: 121.5292},
			Address:   "台北市士林區",
			CreatedAt: now,
		},
		{
			ID:        demoShopID2,
			Name:      "鬼金棒",
			Location:  types.Location{Lat: 25.0515, Lng: 121.5238},
			Address:   "台北市中山區",
			CreatedAt: now,
		},
	}
}

// demoLogs returns the two-log demo dataset referencing the demo shops.
func demoLogs(now time.Time) []types.BowlLog {
	return []types.BowlLog{
		{
			ID:                demoLogID1,
			ShopID:            demoShopID1,
			ItemName:          "黃金雞湯拉麵",
			Rating:            5,
			NoodleHardness:    "硬",
			SoupConcentration: "普通",
			BackFat:           "普通",
			Price:             230,
			QueueTime:         45,
			Notes:             "排隊排好久，但雞湯超好喝，必點！",
			Date:              now,
			HasKaedama:        true,
		},
		{
			ID:                demoLogID2,
			ShopID:            demoShopID2,
			ItemName:          "特製辣麻味噌",
			Rating:            4.5,
			NoodleHardness:    "普通",
			SoupConcentration: "特濃",
			BackFat:           "多",
			Price:             300,
			QueueTime:         60,
			Notes:             "麻得過癮，下次要增量。",
			Date:              now,
			HasKaedama:        false,
		},
	}
}
