package task

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/plantworks/facilityops/internal"
	"github.com/plantworks/facilityops/internal/csvcodec"
	"github.com/plantworks/facilityops/internal/store"
	"github.com/plantworks/facilityops/internal/user"
)

var csvFields = []string{
	"id", "title", "description", "assignedToName", "dueDate", "status", "priority",
}

const csvTitle = "Tasks"

type Service struct {
	store  *store.Store
	logger *slog.Logger
}

func NewService(st *store.Store, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

func (s *Service) load() ([]Task, error) {
	var tasks []Task
	if err := s.store.Load(store.CollectionTasks, &tasks, []Task{}); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Service) save(tasks []Task) error {
	return s.store.Save(store.CollectionTasks, tasks)
}

func (s *Service) GetAll() ([]Task, error) {
	return s.load()
}

// GetVisible lists the board as one user sees it: task managers and
// the root account see everything, everyone else only what is assigned
// to them.
func (s *Service) GetVisible(viewer *user.User) ([]Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}
	if viewer.HasPermission(user.PermManageTasks) {
		return tasks, nil
	}
	visible := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.AssignedToID == viewer.ID {
			visible = append(visible, t)
		}
	}
	return visible, nil
}

func (s *Service) GetByID(id string) (*Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, internal.ErrRecordNotFound
}

// Create opens a task in TODO state.
func (s *Service) Create(t Task) (*Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}

	t.ID = uuid.NewString()
	t.Status = StatusTodo
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}

	tasks = append(tasks, t)
	if err := s.save(tasks); err != nil {
		return nil, err
	}
	s.logger.Info("task assigned",
		"task_id", t.ID,
		"assignee", t.AssignedToName,
		"priority", t.Priority)
	return &t, nil
}

// UpdateStatus moves a task along the review flow. Feedback is stored
// when given; a rejection back to IN_PROGRESS normally carries one.
func (s *Service) UpdateStatus(id string, status Status, feedback string) error {
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
		if feedback != "" {
			tasks[i].ManagerFeedback = feedback
		}
		if err := s.save(tasks); err != nil {
			return err
		}
		s.logger.Info("task status changed", "task_id", id, "status", status)
		return nil
	}
	return internal.ErrRecordNotFound
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
			"title":          t.Title,
			"description":    t.Description,
			"assignedToName": t.AssignedToName,
			"dueDate":        t.DueDate,
			"status":         string(t.Status),
			"priority":       string(t.Priority),
		}
	}
	return csvcodec.Filename(csvTitle), csvcodec.Encode(rows, csvFields), nil
}
