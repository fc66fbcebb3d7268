package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeMaterialProcessed = "worklog.material_processed"
	EventTypeStockMovedToSale  = "inventory.stock_moved_to_sale"
)

// MaterialProcessedEvent is published when a work log records a recovered
// material with a positive weight. The inventory service consumes it to
// keep current stock in step with logged output.
type MaterialProcessedEvent struct {
	BaseEvent
	LogID        string  `json:"log_id"`
	MaterialType string  `json:"material_type"`
	WeightKg     float64 `json:"weight_kg"`
	Category     string  `json:"category"`
}

func NewMaterialProcessedEvent(logID, materialType string, weightKg float64, category string) *MaterialProcessedEvent {
	return &MaterialProcessedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeMaterialProcessed,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"log_id":        logID,
				"material_type": materialType,
				"weight_kg":     weightKg,
				"category":      category,
			},
		},
		LogID:        logID,
		MaterialType: materialType,
		WeightKg:     weightKg,
		Category:     category,
	}
}

// StockMovedToSaleEvent records a move of current stock into a for-sale
// record. Published for observability; no handler mutates state on it.
type StockMovedToSaleEvent struct {
	BaseEvent
	SourceItemID string  `json:"source_item_id"`
	SaleItemID   string  `json:"sale_item_id"`
	WeightKg     float64 `json:"weight_kg"`
	Units        float64 `json:"units"`
}

func NewStockMovedToSaleEvent(sourceItemID, saleItemID string, weightKg, units float64) *StockMovedToSaleEvent {
	return &StockMovedToSaleEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeStockMovedToSale,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"source_item_id": sourceItemID,
				"sale_item_id":   saleItemID,
				"weight_kg":      weightKg,
				"units":          units,
			},
		},
		SourceItemID: sourceItemID,
		SaleItemID:   saleItemID,
		WeightKg:     weightKg,
		Units:        units,
	}
}
