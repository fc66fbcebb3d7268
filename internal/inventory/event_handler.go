package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/plantworks/facilityops/internal/core/events"
)

// EventHandler applies work-log material output to stock. Keeping the
// adjustment behind an event makes the log→inventory dependency visible
// and testable on its own.
type EventHandler struct {
	service *Service
	logger  *slog.Logger
}

func NewEventHandler(service *Service, logger *slog.Logger) *EventHandler {
	return &EventHandler{service: service, logger: logger}
}

func (h *EventHandler) HandleMaterialProcessed(ctx context.Context, event events.Event) error {
	processed, ok := event.(*events.MaterialProcessedEvent)
	if !ok {
		h.logger.Error("invalid event type for material processed handler", "event_type", event.EventType())
		return fmt.Errorf("expected MaterialProcessedEvent, got %T", event)
	}

	if err := h.service.Increment(processed.MaterialType, processed.WeightKg, Category(processed.Category)); err != nil {
		h.logger.Error("failed to apply material output to inventory",
			"error", err,
			"log_id", processed.LogID,
			"material_type", processed.MaterialType,
			"weight_kg", processed.WeightKg)
		return err
	}

	h.logger.Info("inventory incremented from work log",
		"log_id", processed.LogID,
		"material_type", processed.MaterialType,
		"weight_kg", processed.WeightKg)
	return nil
}

func (h *EventHandler) RegisterEventHandlers(bus *events.EventBus) {
	bus.Subscribe(events.EventTypeMaterialProcessed, h.HandleMaterialProcessed)
}
