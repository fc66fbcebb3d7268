package inventory

import "time"

// DefaultItems seeds the inventory collection on first access.
func DefaultItems() []Item {
	now := time.Now()
	return []Item{
		{ID: "i1", Type: "MOTHERBOARD", Category: CategoryOperations, Status: StatusCurrent, QuantityKg: 1250, Location: "Warehouse A", LastUpdated: now, CustomName: "Dell Motherboards"},
		{ID: "i2", Type: "PLASTIC", Category: CategoryOperations, Status: StatusCurrent, QuantityKg: 5000, Location: "Yard B", LastUpdated: now},
		{ID: "i3", Type: "BATTERY", Category: CategoryOperations, Status: StatusForSale, QuantityKg: 300, Location: "Hazmat Zone", LastUpdated: now, SalesDetails: &SalesDetails{GrossWeight: 310, TareWeight: 10, NetWeight: 300, PackagingType: PackagingBox}},
		{ID: "i4", Type: "COPPER", Category: CategoryOperations, Status: StatusCurrent, QuantityKg: 450, Location: "Secure Cage", LastUpdated: now},
		{ID: "i5", Type: "GOLD_PLATE_BOARD", Category: CategoryOperations, Status: StatusCurrent, QuantityKg: 120, Location: "Secure Cage", LastUpdated: now},
		{ID: "i6", Type: "RAM", Category: CategoryTechOps, Status: StatusCurrent, QuantityKg: 0, QuantityUnits: 150, Location: "Tech Lab", LastUpdated: now, CustomName: "Mixed RAM Stick"},
	}
}
