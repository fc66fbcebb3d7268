package visitor

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/plantworks/facilityops/internal"
	"github.com/plantworks/facilityops/internal/csvcodec"
	"github.com/plantworks/facilityops/internal/store"
)

var csvFields = []string{
	"id", "date", "name", "contact", "purpose", "hostName", "inTime", "outTime",
}

const csvTitle = "VisitorLog"

type Service struct {
	store  *store.Store
	logger *slog.Logger

	// now is swappable so checkout stamps are deterministic in tests.
	now func() time.Time
}

func NewService(st *store.Store, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger, now: time.Now}
}

func (s *Service) load() ([]Visitor, error) {
	var visitors []Visitor
	if err := s.store.Load(store.CollectionVisitors, &visitors, []Visitor{}); err != nil {
		return nil, err
	}
	return visitors, nil
}

func (s *Service) save(visitors []Visitor) error {
	return s.store.Save(store.CollectionVisitors, visitors)
}

func (s *Service) GetAll() ([]Visitor, error) {
	return s.load()
}

func (s *Service) Create(v Visitor) (*Visitor, error) {
	visitors, err := s.load()
	if err != nil {
		return nil, err
	}

	v.ID = uuid.NewString()
	if v.Date == "" {
		v.Date = s.now().Format("2006-01-02")
	}
	if v.InTime == "" {
		v.InTime = s.now().Format("15:04")
	}

	visitors = append([]Visitor{v}, visitors...)
	if err := s.save(visitors); err != nil {
		return nil, err
	}
	s.logger.Info("visitor checked in", "visitor_id", v.ID, "name", v.Name)
	return &v, nil
}

func (s *Service) Update(updated Visitor) error {
	visitors, err := s.load()
	if err != nil {
		return err
	}
	for i := range visitors {
		if visitors[i].ID == updated.ID {
			visitors[i] = updated
			return s.save(visitors)
		}
	}
	return internal.ErrRecordNotFound
}

// Checkout stamps the current clock time as the visitor's out time.
// Checking out an already departed visitor just refreshes the stamp.
func (s *Service) Checkout(id string) error {
	visitors, err := s.load()
	if err != nil {
		return err
	}
	for i := range visitors {
		if visitors[i].ID == id {
			visitors[i].OutTime = s.now().Format("15:04")
			if err := s.save(visitors); err != nil {
				return err
			}
			s.logger.Info("visitor checked out", "visitor_id", id)
			return nil
		}
	}
	return internal.ErrRecordNotFound
}

func (s *Service) Delete(id string) error {
	visitors, err := s.load()
	if err != nil {
		return err
	}
	for i := range visitors {
		if visitors[i].ID == id {
			visitors = append(visitors[:i], visitors[i+1:]...)
			return s.save(visitors)
		}
	}
	return internal.ErrRecordNotFound
}

func (s *Service) ExportCSV() (string, string, error) {
	visitors, err := s.load()
	if err != nil {
		return "", "", err
	}
	rows := make([]csvcodec.Record, len(visitors))
	for i, v := range visitors {
		rows[i] = csvcodec.Record{
			"id":       v.ID,
			"date":     v.Date,
			"name":     v.Name,
			"contact":  v.Contact,
			"purpose":  v.Purpose,
			"hostName": v.HostName,
			"inTime":   v.InTime,
			"outTime":  v.OutTime,
		}
	}
	return csvcodec.Filename(csvTitle), csvcodec.Encode(rows, csvFields), nil
}

func (s *Service) ImportCSV(text string) (csvcodec.ImportStats, error) {
	var stats csvcodec.ImportStats

	visitors, err := s.load()
	if err != nil {
		return stats, err
	}

	apply := func(v *Visitor, rec csvcodec.Record) {
		if rec.Has("date") {
			v.Date = rec.Get("date")
		}
		if rec.Has("name") {
			v.Name = rec.Get("name")
		}
		if rec.Has("contact") {
			v.Contact = rec.Get("contact")
		}
		if rec.Has("purpose") {
			v.Purpose = rec.Get("purpose")
		}
		if rec.Has("hostName") {
			v.HostName = rec.Get("hostName")
		}
		if rec.Has("inTime") {
			v.InTime = rec.Get("inTime")
		}
		if rec.Has("outTime") {
			v.OutTime = rec.Get("outTime")
		}
	}

	for _, rec := range csvcodec.Decode(text) {
		id := rec.Get("id")
		found := false
		if id != "" {
			for i := range visitors {
				if visitors[i].ID == id {
					apply(&visitors[i], rec)
					stats.Updated++
					found = true
					break
				}
			}
		}
		if found {
			continue
		}

		v := Visitor{ID: id}
		if v.ID == "" {
			v.ID = uuid.NewString()
		}
		apply(&v, rec)
		visitors = append(visitors, v)
		stats.Created++
	}

	if err := s.save(visitors); err != nil {
		return stats, err
	}
	s.logger.Info("visitors imported from CSV", "created", stats.Created, "updated", stats.Updated)
	return stats, nil
}
