package inventory

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/plantworks/facilityops/internal"
	"github.com/plantworks/facilityops/internal/core/events"
	"github.com/plantworks/facilityops/internal/store"
)

// Service manages stock records. Increment is also reachable through the
// event bus when work logs report processed material.
type Service struct {
	store  *store.Store
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(st *store.Store, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{store: st, bus: bus, logger: logger}
}

func (s *Service) load() ([]Item, error) {
	var items []Item
	if err := s.store.Load(store.CollectionInventory, &items, DefaultItems()); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) save(items []Item) error {
	return s.store.Save(store.CollectionInventory, items)
}

func (s *Service) GetAll() ([]Item, error) {
	return s.load()
}

func (s *Service) GetByID(id string) (*Item, error) {
	items, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, internal.ErrRecordNotFound
}

func (s *Service) GetByStatus(status Status) ([]Item, error) {
	items, err := s.load()
	if err != nil {
		return nil, err
	}
	var out []Item
	for _, item := range items {
		if item.Status == status {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *Service) GetByCategory(category Category) ([]Item, error) {
	items, err := s.load()
	if err != nil {
		return nil, err
	}
	var out []Item
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *Service) Create(item Item) (*Item, error) {
	if item.QuantityKg < 0 || item.QuantityUnits < 0 {
		return nil, internal.NewValidationError("stock quantities cannot be negative", internal.ErrCodeInvalidWeight)
	}
	items, err := s.load()
	if err != nil {
		return nil, err
	}

	item.ID = uuid.NewString()
	item.LastUpdated = time.Now()
	if item.Status == "" {
		item.Status = StatusCurrent
	}
	items = append(items, item)

	if err := s.save(items); err != nil {
		return nil, err
	}
	s.logger.Info("inventory item created", "item_id", item.ID, "type", item.Type)
	return &item, nil
}

func (s *Service) Update(updated Item) error {
	if updated.QuantityKg < 0 || updated.QuantityUnits < 0 {
		return internal.NewValidationError("stock quantities cannot be negative", internal.ErrCodeInvalidWeight)
	}
	items, err := s.load()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == updated.ID {
			updated.LastUpdated = time.Now()
			items[i] = updated
			return s.save(items)
		}
	}
	return internal.ErrRecordNotFound
}

func (s *Service) Delete(id string) error {
	items, err := s.load()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			items = append(items[:i], items[i+1:]...)
			return s.save(items)
		}
	}
	return internal.ErrRecordNotFound
}

// Increment adds processed weight to the CURRENT record of the material,
// creating one (weight only, default location) when none exists.
func (s *Service) Increment(materialType string, amountKg float64, category Category) error {
	if amountKg <= 0 {
		return internal.ErrInvalidWeight
	}
	items, err := s.load()
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].Type == materialType && items[i].Status == StatusCurrent {
			items[i].QuantityKg += amountKg
			items[i].LastUpdated = time.Now()
			return s.save(items)
		}
	}

	items = append(items, Item{
		ID:          uuid.NewString(),
		Type:        materialType,
		Category:    category,
		Status:      StatusCurrent,
		QuantityKg:  amountKg,
		Location:    DefaultLocation,
		LastUpdated: time.Now(),
	})
	s.logger.Info("inventory record auto-created for material", "type", materialType, "weight_kg", amountKg)
	return s.save(items)
}

// MoveStockToSales debits a current item and creates an independent
// FOR_SALE record carrying the moved amounts. Mass is conserved: the
// debit equals the credit, with the source clamped at zero.
func (s *Service) MoveStockToSales(ctx context.Context, itemID string, weightKg, units float64, details *SalesDetails) (*Item, error) {
	if weightKg <= 0 && units <= 0 {
		return nil, internal.NewValidationError("move to sale needs a positive weight or unit count", internal.ErrCodeInvalidWeight)
	}
	items, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID != itemID {
			continue
		}

		items[i].QuantityKg -= weightKg
		if items[i].QuantityKg < 0 {
			items[i].QuantityKg = 0
		}
		items[i].QuantityUnits -= units
		if items[i].QuantityUnits < 0 {
			items[i].QuantityUnits = 0
		}
		items[i].LastUpdated = time.Now()

		sale := items[i]
		sale.ID = uuid.NewString()
		sale.Status = StatusForSale
		sale.QuantityKg = weightKg
		sale.QuantityUnits = units
		sale.SalesDetails = details
		sale.LastUpdated = time.Now()
		items = append(items, sale)

		if err := s.save(items); err != nil {
			return nil, err
		}

		if s.bus != nil {
			_ = s.bus.Publish(ctx, events.NewStockMovedToSaleEvent(itemID, sale.ID, weightKg, units))
		}
		s.logger.Info("stock moved to sales",
			"source_item_id", itemID,
			"sale_item_id", sale.ID,
			"weight_kg", weightKg,
			"units", units)
		return &sale, nil
	}
	return nil, internal.ErrRecordNotFound
}
