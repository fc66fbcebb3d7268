package maintenance

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/plantworks/facilityops/internal"
	"github.com/plantworks/facilityops/internal/csvcodec"
	"github.com/plantworks/facilityops/internal/store"
)

var csvFields = []string{
	"id", "machineName", "technicianName", "scheduledDate",
	"status", "notes", "frequency",
}

const csvTitle = "MaintenanceTasks"

const dateLayout = "2006-01-02"

type Service struct {
	store  *store.Store
	logger *slog.Logger
	now    func() time.Time
}

func NewService(st *store.Store, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger, now: time.Now}
}

func (s *Service) load() ([]Task, error) {
	var tasks []Task
	if err := s.store.Load(store.CollectionMaintenance, &tasks, []Task{}); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Service) save(tasks []Task) error {
	return s.store.Save(store.CollectionMaintenance, tasks)
}

func (s *Service) GetAll() ([]Task, error) {
	return s.load()
}

// GetForTechnician scopes the schedule to one technician's jobs.
// Admins and supervisors pass an empty id and see everything.
func (s *Service) GetForTechnician(technicianID string) ([]Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}
	if technicianID == "" {
		return tasks, nil
	}
	scoped := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.TechnicianID == technicianID {
			scoped = append(scoped, t)
		}
	}
	return scoped, nil
}

// Schedule creates a task in SCHEDULED state.
func (s *Service) Schedule(task Task) (*Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}

	task.ID = uuid.NewString()
	task.Status = StatusScheduled
	if task.Frequency == "" {
		task.Frequency = FrequencyNone
	}

	tasks = append(tasks, task)
	if err := s.save(tasks); err != nil {
		return nil, err
	}
	s.logger.Info("maintenance scheduled",
		"task_id", task.ID,
		"machine", task.MachineName,
		"technician", task.TechnicianName,
		"date", task.ScheduledDate)
	return &task, nil
}

// UpdateStatus advances a task through its lifecycle. Only forward
// moves are accepted. Completing a recurring task schedules the next
// occurrence at the configured interval.
func (s *Service) UpdateStatus(id string, status Status) error {
	tasks, err := s.load()
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		if !ValidTransition(status, tasks[i].Status) {
			return internal.NewConflictError(
				fmt.Sprintf("cannot move task from %s to %s", tasks[i].Status, status),
				internal.ErrCodeInvalidStatus)
		}
		tasks[i].Status = status

		if status == StatusCompleted && tasks[i].Frequency != FrequencyNone {
			if next, ok := nextOccurrence(tasks[i]); ok {
				tasks = append(tasks, next)
				s.logger.Info("recurring maintenance rescheduled",
					"parent_task_id", tasks[i].ID,
					"next_date", next.ScheduledDate)
			}
		}
		return s.save(tasks)
	}
	return internal.ErrRecordNotFound
}

func nextOccurrence(completed Task) (Task, bool) {
	date, err := time.Parse(dateLayout, completed.ScheduledDate)
	if err != nil {
		return Task{}, false
	}
	switch completed.Frequency {
	case FrequencyWeekly:
		date = date.AddDate(0, 0, 7)
	case FrequencyMonthly:
		date = date.AddDate(0, 1, 0)
	case FrequencyYearly:
		date = date.AddDate(1, 0, 0)
	default:
		return Task{}, false
	}

	next := completed
	next.ID = uuid.NewString()
	next.Status = StatusScheduled
	next.ScheduledDate = date.Format(dateLayout)
	next.ParentTaskID = completed.ID
	return next, true
}

// Upcoming returns unfinished tasks due within the next seven days,
// overdue ones included.
func (s *Service) Upcoming() ([]Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}
	cutoff := s.now().AddDate(0, 0, 7)
	upcoming := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == StatusCompleted {
			continue
		}
		date, err := time.Parse(dateLayout, t.ScheduledDate)
		if err != nil {
			continue
		}
		if !date.After(cutoff) {
			upcoming = append(upcoming, t)
		}
	}
	return upcoming, nil
}

func (s *Service) Delete(id string) error {
	tasks, err := s.load()
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			tasks = append(tasks[:i], tasks[i+1:]...)
			return s.save(tasks)
		}
	}
	return internal.ErrRecordNotFound
}

func (s *Service) ExportCSV() (string, string, error) {
	tasks, err := s.load()
	if err != nil {
		return "", "", err
	}
	rows := make([]csvcodec.Record, len(tasks))
	for i, t := range tasks {
		rows[i] = csvcodec.Record{
			"id":             t.ID,
			"machineName":    t.MachineName,
			"technicianName": t.TechnicianName,
			"scheduledDate":  t.ScheduledDate,
			"status":         string(t.Status),
			"notes":          t.Notes,
			"frequency":      string(t.Frequency),
		}
	}
	return csvcodec.Filename(csvTitle), csvcodec.Encode(rows, csvFields), nil
}

// ImportCSV upserts by id. Imported rows bypass the transition check;
// a backup restore must reproduce whatever state was exported.
func (s *Service) ImportCSV(text string) (csvcodec.ImportStats, error) {
	var stats csvcodec.ImportStats

	tasks, err := s.load()
	if err != nil {
		return stats, err
	}

	apply := func(t *Task, rec csvcodec.Record) {
		if rec.Has("machineName") {
			t.MachineName = rec.Get("machineName")
		}
		if rec.Has("technicianName") {
			t.TechnicianName = rec.Get("technicianName")
		}
		if rec.Has("scheduledDate") {
			t.ScheduledDate = rec.Get("scheduledDate")
		}
		if rec.Has("status") {
			t.Status = Status(rec.Get("status"))
		}
		if rec.Has("notes") {
			t.Notes = rec.Get("notes")
		}
		if rec.Has("frequency") {
			t.Frequency = Frequency(rec.Get("frequency"))
		}
	}

	for _, rec := range csvcodec.Decode(text) {
		id := rec.Get("id")
		found := false
		if id != "" {
			for i := range tasks {
				if tasks[i].ID == id {
					apply(&tasks[i], rec)
					stats.Updated++
					found = true
					break
				}
			}
		}
		if found {
			continue
		}

		t := Task{ID: id, Status: StatusScheduled, Frequency: FrequencyNone}
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		apply(&t, rec)
		tasks = append(tasks, t)
		stats.Created++
	}

	if err := s.save(tasks); err != nil {
		return stats, err
	}
	s.logger.Info("maintenance imported from CSV", "created", stats.Created, "updated", stats.Updated)
	return stats, nil
}
