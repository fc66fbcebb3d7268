package attendance

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/plantworks/facilityops/internal/csvcodec"
	"github.com/plantworks/facilityops/internal/store"
)

var csvFields = []string{
	"id", "date", "userName", "inTime", "outTime", "status", "source",
}

const csvTitle = "Attendance"

type Service struct {
	store  *store.Store
	logger *slog.Logger
}

func NewService(st *store.Store, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

func (s *Service) load() ([]Record, error) {
	var records []Record
	if err := s.store.Load(store.CollectionAttendance, &records, []Record{}); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Service) save(records []Record) error {
	return s.store.Save(store.CollectionAttendance, records)
}

func (s *Service) GetAll() ([]Record, error) {
	return s.load()
}

func (s *Service) GetByDate(date string) ([]Record, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}
	byDate := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Date == date {
			byDate = append(byDate, r)
		}
	}
	return byDate, nil
}

// Mark upserts one record, keyed on (user, date). A re-mark keeps the
// existing record id so exports stay stable across corrections.
func (s *Service) Mark(record Record) (*Record, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].UserID == record.UserID && records[i].Date == record.Date {
			record.ID = records[i].ID
			records[i] = record
			if err := s.save(records); err != nil {
				return nil, err
			}
			return &record, nil
		}
	}

	record.ID = uuid.NewString()
	records = append(records, record)
	if err := s.save(records); err != nil {
		return nil, err
	}
	return &record, nil
}

// SaveAll bulk-applies a sync batch, typically a day's biometric pull.
// Existing records for the same (user, date) keys are dropped first so
// the batch wins wholesale.
func (s *Service) SaveAll(batch []Record) error {
	records, err := s.load()
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, r := range records {
		replaced := false
		for _, n := range batch {
			if n.UserID == r.UserID && n.Date == r.Date {
				replaced = true
				break
			}
		}
		if !replaced {
			kept = append(kept, r)
		}
	}

	for i := range batch {
		if batch[i].ID == "" {
			batch[i].ID = uuid.NewString()
		}
	}

	if err := s.save(append(kept, batch...)); err != nil {
		return err
	}
	s.logger.Info("attendance batch saved", "count", len(batch))
	return nil
}

func (s *Service) ExportCSV() (string, string, error) {
	records, err := s.load()
	if err != nil {
		return "", "", err
	}
	rows := make([]csvcodec.Record, len(records))
	for i, r := range records {
		rows[i] = csvcodec.Record{
			"id":       r.ID,
			"date":     r.Date,
			"userName": r.UserName,
			"inTime":   r.InTime,
			"outTime":  r.OutTime,
			"status":   string(r.Status),
			"source":   string(r.Source),
		}
	}
	return csvcodec.Filename(csvTitle), csvcodec.Encode(rows, csvFields), nil
}

// ImportCSV upserts by record id, unlike Mark which keys on user and
// date; an exported file re-imports onto the same records.
func (s *Service) ImportCSV(text string) (csvcodec.ImportStats, error) {
	var stats csvcodec.ImportStats

	records, err := s.load()
	if err != nil {
		return stats, err
	}

	apply := func(r *Record, rec csvcodec.Record) {
		if rec.Has("date") {
			r.Date = rec.Get("date")
		}
		if rec.Has("userId") {
			r.UserID = rec.Get("userId")
		}
		if rec.Has("userName") {
			r.UserName = rec.Get("userName")
		}
		if rec.Has("inTime") {
			r.InTime = rec.Get("inTime")
		}
		if rec.Has("outTime") {
			r.OutTime = rec.Get("outTime")
		}
		if rec.Has("status") {
			r.Status = Status(rec.Get("status"))
		}
		if rec.Has("source") {
			r.Source = Source(rec.Get("source"))
		}
	}

	for _, rec := range csvcodec.Decode(text) {
		id := rec.Get("id")
		found := false
		if id != "" {
			for i := range records {
				if records[i].ID == id {
					apply(&records[i], rec)
					stats.Updated++
					found = true
					break
				}
			}
		}
		if found {
			continue
		}

		r := Record{ID: id, Status: StatusPresent, Source: SourceManual}
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		apply(&r, rec)
		records = append(records, r)
		stats.Created++
	}

	if err := s.save(records); err != nil {
		return stats, err
	}
	s.logger.Info("attendance imported from CSV", "created", stats.Created, "updated", stats.Updated)
	return stats, nil
}
