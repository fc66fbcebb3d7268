package inventory

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/plantworks/facilityops/internal/csvcodec"
)

// csvFields is the single source of truth for the inventory CSV layout;
// export and import both read it so the round trip stays symmetric.
var csvFields = []string{
	"id", "type", "customName", "category", "status",
	"quantityKg", "quantityUnits", "location", "lastUpdated",
}

const csvTitle = "Inventory"

func toCSVRecord(item Item) csvcodec.Record {
	return csvcodec.Record{
		"id":            item.ID,
		"type":          item.Type,
		"customName":    item.CustomName,
		"category":      string(item.Category),
		"status":        string(item.Status),
		"quantityKg":    strconv.FormatFloat(item.QuantityKg, 'f', -1, 64),
		"quantityUnits": strconv.FormatFloat(item.QuantityUnits, 'f', -1, 64),
		"location":      item.Location,
		"lastUpdated":   item.LastUpdated.Format(time.RFC3339),
	}
}

// applyCSVRecord merge-overwrites fields present in the row; absent
// columns leave the stored value alone.
func applyCSVRecord(item *Item, rec csvcodec.Record) {
	if rec.Has("type") {
		item.Type = rec.Get("type")
	}
	if rec.Has("customName") {
		item.CustomName = rec.Get("customName")
	}
	if rec.Has("category") {
		item.Category = Category(rec.Get("category"))
	}
	if rec.Has("status") {
		item.Status = Status(rec.Get("status"))
	}
	if rec.Has("quantityKg") {
		item.QuantityKg = rec.Float("quantityKg")
	}
	if rec.Has("quantityUnits") {
		item.QuantityUnits = rec.Float("quantityUnits")
	}
	if rec.Has("location") {
		item.Location = rec.Get("location")
	}
	if rec.Has("lastUpdated") {
		if ts, err := time.Parse(time.RFC3339, rec.Get("lastUpdated")); err == nil {
			item.LastUpdated = ts
		}
	}
}

// ExportCSV renders the whole inventory. Returns the conventional
// filename and the CSV body.
func (s *Service) ExportCSV() (string, string, error) {
	items, err := s.load()
	if err != nil {
		return "", "", err
	}
	rows := make([]csvcodec.Record, len(items))
	for i, item := range items {
		rows[i] = toCSVRecord(item)
	}
	return csvcodec.Filename(csvTitle), csvcodec.Encode(rows, csvFields), nil
}

// ImportCSV upserts rows by id: known ids merge-overwrite in place,
// unknown rows are inserted with a synthesized id.
func (s *Service) ImportCSV(text string) (csvcodec.ImportStats, error) {
	var stats csvcodec.ImportStats

	items, err := s.load()
	if err != nil {
		return stats, err
	}

	for _, rec := range csvcodec.Decode(text) {
		id := rec.Get("id")
		found := false
		if id != "" {
			for i := range items {
				if items[i].ID == id {
					applyCSVRecord(&items[i], rec)
					stats.Updated++
					found = true
					break
				}
			}
		}
		if found {
			continue
		}

		item := Item{
			ID:          id,
			Status:      StatusCurrent,
			LastUpdated: time.Now(),
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		applyCSVRecord(&item, rec)
		items = append(items, item)
		stats.Created++
	}

	if err := s.save(items); err != nil {
		return stats, err
	}
	s.logger.Info("inventory imported from CSV", "created", stats.Created, "updated", stats.Updated)
	return stats, nil
}
