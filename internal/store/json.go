// JSON record structures for collection file persistence. The field names
// and the epoch-millisecond timestamps match the collection format the
// store has always written, so existing data files load unchanged.
package store

import (
	"time"

	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

// locationJSON represents a coordinate pair in a collection file.
type locationJSON struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// shopJSON represents a shop in shops.json.
type shopJSON struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Location  locationJSON `json:"location"`
	Address   string       `json:"address"`
	CreatedAt int64        `json:"createdAt"`
}

// logJSON represents a bowl log in logs.json.
type logJSON struct {
	ID                string  `json:"id"`
	ShopID            string  `json:"shopId"`
	ItemName          string  `json:"itemName"`
	Rating            float64 `json:"rating"`
	NoodleHardness    string  `json:"noodleHardness"`
	SoupConcentration string  `json:"soupConcentration"`
	BackFat           string  `json:"backFat"`
	Price             int     `json:"price"`
	QueueTime         int     `json:"queueTime"`
	Notes             string  `json:"notes"`
	Date              int64   `json:"date"`
	HasKaedama        bool    `json:"hasKaedama"`
}

func shopToJSON(s types.Shop) shopJSON {
	return shopJSON{
		ID:        s.ID,
		Name:      s.Name,
		Location:  locationJSON{Lat: s.Location.Lat, Lng: s.Location.Lng},
		Address:   s.Address,
		CreatedAt: s.CreatedAt.UnixMilli(),
	}
}

func shopFromJSON(j shopJSON) types.Shop {
	return types.Shop{
		ID:        j.ID,
		Name:      j.Name,
		Address:   j.Address,
		Location:  types.Location{Lat: j.Location.Lat, Lng: j.Location.Lng},
		CreatedAt: time.UnixMilli(j.CreatedAt).UTC(),
	}
}

func logToJSON(b types.BowlLog) logJSON {
	return logJSON{
		ID:                b.ID,
		ShopID:            b.ShopID,
		ItemName:          b.ItemName,
		Rating:            b.Rating,
		NoodleHardness:    b.NoodleHardness,
		SoupConcentration: b.SoupConcentration,
		BackFat:           b.BackFat,
		Price:             b.Price,
		QueueTime:         b.QueueTime,
		Notes:             b.Notes,
		Date:              b.Date.UnixMilli(),
		HasKaedama:        b.HasKaedama,
	}
}

func logFromJSON(j logJSON) types.BowlLog {
	return types.BowlLog{
		ID:                j.ID,
		ShopID:            j.ShopID,
		ItemName:          j.ItemName,
		Rating:            j.Rating,
		NoodleHardness:    j.NoodleHardness,
		SoupConcentration: j.SoupConcentration,
		BackFat:           j.BackFat,
		Price:             j.Price,
		QueueTime:         j.QueueTime,
		Notes:             j.Notes,
		Date:              time.UnixMilli(j.Date).UTC(),
		HasKaedama:        j.HasKaedama,
	}
}
