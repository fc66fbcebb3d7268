package logistics

import (
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/plantworks/facilityops/internal"
	"github.com/plantworks/facilityops/internal/csvcodec"
	"github.com/plantworks/facilityops/internal/store"
)

var csvFields = []string{
	"id", "date", "customerName", "vehicleNo",
	"itemsDescription", "totalNetWeight", "recordedBy",
}

const csvTitle = "Logistics"

type Service struct {
	store  *store.Store
	logger *slog.Logger
}

func NewService(st *store.Store, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

func (s *Service) load() ([]Entry, error) {
	var entries []Entry
	if err := s.store.Load(store.CollectionLogistics, &entries, []Entry{}); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Service) save(entries []Entry) error {
	return s.store.Save(store.CollectionLogistics, entries)
}

// GetAll returns dispatches newest first; Create prepends, so stored
// order is already display order.
func (s *Service) GetAll() ([]Entry, error) {
	return s.load()
}

func (s *Service) GetByID(id string) (*Entry, error) {
	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}
	return nil, internal.ErrRecordNotFound
}

// Create normalizes breakdown nets and prepends the dispatch.
func (s *Service) Create(entry Entry) (*Entry, error) {
	entries, err := s.load()
	if err != nil {
		return nil, err
	}

	entry.ID = uuid.NewString()
	entry.Normalize()

	entries = append([]Entry{entry}, entries...)
	if err := s.save(entries); err != nil {
		return nil, err
	}
	s.logger.Info("logistics entry created",
		"entry_id", entry.ID,
		"customer", entry.CustomerName,
		"net_weight_kg", entry.TotalNetWeight)
	return &entry, nil
}

func (s *Service) Update(updated Entry) error {
	entries, err := s.load()
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].ID == updated.ID {
			updated.Normalize()
			entries[i] = updated
			return s.save(entries)
		}
	}
	return internal.ErrRecordNotFound
}

func (s *Service) Delete(id string) error {
	entries, err := s.load()
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].ID == id {
			entries = append(entries[:i], entries[i+1:]...)
			return s.save(entries)
		}
	}
	return internal.ErrRecordNotFound
}

// ExportCSV renders the flat dispatch columns; breakdown details stay
// in the store.
func (s *Service) ExportCSV() (string, string, error) {
	entries, err := s.load()
	if err != nil {
		return "", "", err
	}
	rows := make([]csvcodec.Record, len(entries))
	for i, e := range entries {
		rows[i] = csvcodec.Record{
			"id":               e.ID,
			"date":             e.Date,
			"customerName":     e.CustomerName,
			"vehicleNo":        e.VehicleNo,
			"itemsDescription": e.ItemsDescription,
			"totalNetWeight":   strconv.FormatFloat(e.TotalNetWeight, 'f', -1, 64),
			"recordedBy":       e.RecordedBy,
		}
	}
	return csvcodec.Filename(csvTitle), csvcodec.Encode(rows, csvFields), nil
}

func (s *Service) ImportCSV(text string) (csvcodec.ImportStats, error) {
	var stats csvcodec.ImportStats

	entries, err := s.load()
	if err != nil {
		return stats, err
	}

	apply := func(e *Entry, rec csvcodec.Record) {
		if rec.Has("date") {
			e.Date = rec.Get("date")
		}
		if rec.Has("customerName") {
			e.CustomerName = rec.Get("customerName")
		}
		if rec.Has("vehicleNo") {
			e.VehicleNo = rec.Get("vehicleNo")
		}
		if rec.Has("itemsDescription") {
			e.ItemsDescription = rec.Get("itemsDescription")
		}
		if rec.Has("totalNetWeight") {
			e.TotalNetWeight = rec.Float("totalNetWeight")
		}
		if rec.Has("recordedBy") {
			e.RecordedBy = rec.Get("recordedBy")
		}
	}

	for _, rec := range csvcodec.Decode(text) {
		id := rec.Get("id")
		found := false
		if id != "" {
			for i := range entries {
				if entries[i].ID == id {
					apply(&entries[i], rec)
					stats.Updated++
					found = true
					break
				}
			}
		}
		if found {
			continue
		}

		e := Entry{ID: id}
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		apply(&e, rec)
		entries = append(entries, e)
		stats.Created++
	}

	if err := s.save(entries); err != nil {
		return stats, err
	}
	s.logger.Info("logistics imported from CSV", "created", stats.Created, "updated", stats.Updated)
	return stats, nil
}
