package worklog

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/plantworks/facilityops/internal"
	"github.com/plantworks/facilityops/internal/core/events"
	"github.com/plantworks/facilityops/internal/store"
)

type Service struct {
	store  *store.Store
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(st *store.Store, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{store: st, bus: bus, logger: logger}
}

func (s *Service) load() ([]WorkLog, error) {
	var logs []WorkLog
	if err := s.store.Load(store.CollectionLogs, &logs, []WorkLog{}); err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *Service) save(logs []WorkLog) error {
	return s.store.Save(store.CollectionLogs, logs)
}

// GetAll returns every log, newest date first.
func (s *Service) GetAll() ([]WorkLog, error) {
	logs, err := s.load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Date > logs[j].Date
	})
	return logs, nil
}

// GetByUser returns one worker's logs, newest date first.
func (s *Service) GetByUser(userID string) ([]WorkLog, error) {
	logs, err := s.GetAll()
	if err != nil {
		return nil, err
	}
	filtered := make([]WorkLog, 0, len(logs))
	for _, l := range logs {
		if l.UserID == userID {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

func (s *Service) GetByID(id string) (*WorkLog, error) {
	logs, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range logs {
		if logs[i].ID == id {
			return &logs[i], nil
		}
	}
	return nil, internal.ErrRecordNotFound
}

// Create stores a new log. When the log carries a recovered material
// with a positive weight the matching inventory stock is credited
// through the event bus, synchronously, so the write and the credit
// succeed together. The log is marked so later edits never credit the
// same weight again.
func (s *Service) Create(ctx context.Context, log WorkLog) (*WorkLog, error) {
	if log.WeightProcessedKg < 0 {
		return nil, internal.ErrInvalidWeight
	}

	logs, err := s.load()
	if err != nil {
		return nil, err
	}

	log.ID = uuid.NewString()
	if log.Date == "" {
		log.Date = DayStamp(time.Now())
	}
	if log.Status == "" {
		log.Status = StatusPending
	}

	applyToInventory := log.MaterialType != "" && log.WeightProcessedKg > 0
	if applyToInventory {
		log.InventoryApplied = true
	}

	logs = append(logs, log)
	if err := s.save(logs); err != nil {
		return nil, err
	}

	if applyToInventory {
		event := events.NewMaterialProcessedEvent(
			log.ID, log.MaterialType, log.WeightProcessedKg, inventoryCategory(log.Category))
		if err := s.bus.PublishSync(ctx, event); err != nil {
			return nil, err
		}
	}

	s.logger.Info("work log created",
		"log_id", log.ID,
		"user_id", log.UserID,
		"category", log.Category)
	return &log, nil
}

func inventoryCategory(c WorkCategory) string {
	if c.IsTech() {
		return "TECH_OPS"
	}
	return "OPERATIONS"
}

// Update replaces an existing log in place. Inventory is never
// re-credited on edit, even if the weight changed.
func (s *Service) Update(updated WorkLog) error {
	logs, err := s.load()
	if err != nil {
		return err
	}
	for i := range logs {
		if logs[i].ID == updated.ID {
			updated.InventoryApplied = logs[i].InventoryApplied
			logs[i] = updated
			return s.save(logs)
		}
	}
	return internal.ErrRecordNotFound
}

// SetStatus moves a log through the approval flow.
func (s *Service) SetStatus(id string, status ApprovalStatus) error {
	logs, err := s.load()
	if err != nil {
		return err
	}
	for i := range logs {
		if logs[i].ID == id {
			logs[i].Status = status
			if err := s.save(logs); err != nil {
				return err
			}
			s.logger.Info("work log status changed", "log_id", id, "status", status)
			return nil
		}
	}
	return internal.ErrRecordNotFound
}

func (s *Service) Delete(id string) error {
	logs, err := s.load()
	if err != nil {
		return err
	}
	for i := range logs {
		if logs[i].ID == id {
			logs = append(logs[:i], logs[i+1:]...)
			return s.save(logs)
		}
	}
	return internal.ErrRecordNotFound
}

// PerformanceSummary aggregates one day's logged output.
type PerformanceSummary struct {
	Date          string       `json:"date"`
	TotalWeightKg float64      `json:"totalWeightKg"`
	TopPerformer  TopPerformer `json:"topPerformer"`
}

type TopPerformer struct {
	Name     string  `json:"name"`
	WeightKg float64 `json:"weightKg"`
}

// YesterdayPerformance sums yesterday's processed weight and picks the
// worker who logged the most of it.
func (s *Service) YesterdayPerformance() (*PerformanceSummary, error) {
	logs, err := s.load()
	if err != nil {
		return nil, err
	}

	yesterday := DayStamp(time.Now().AddDate(0, 0, -1))
	summary := &PerformanceSummary{
		Date:         yesterday,
		TopPerformer: TopPerformer{Name: "N/A"},
	}

	perUser := make(map[string]*TopPerformer)
	for _, l := range logs {
		if l.Date != yesterday {
			continue
		}
		summary.TotalWeightKg += l.WeightProcessedKg
		entry, ok := perUser[l.UserID]
		if !ok {
			entry = &TopPerformer{Name: l.UserName}
			perUser[l.UserID] = entry
		}
		entry.WeightKg += l.WeightProcessedKg
	}

	for _, entry := range perUser {
		if entry.WeightKg > summary.TopPerformer.WeightKg {
			summary.TopPerformer = *entry
		}
	}
	return summary, nil
}
