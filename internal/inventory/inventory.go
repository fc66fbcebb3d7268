package inventory

import "time"

type Category string

const (
	CategoryOperations Category = "OPERATIONS"
	CategoryTechOps    Category = "TECH_OPS"
)

type Status string

const (
	StatusCurrent Status = "CURRENT"
	StatusForSale Status = "FOR_SALE"
	StatusSold    Status = "SOLD"
)

type PackagingType string

const (
	PackagingJumboBag PackagingType = "JUMBO_BAG"
	PackagingPallet   PackagingType = "PALLET"
	PackagingBox      PackagingType = "BOX"
	PackagingLoose    PackagingType = "LOOSE"
)

// SalesDetails records how a for-sale lot was weighed and packed.
type SalesDetails struct {
	GrossWeight   float64       `json:"grossWeight,omitempty"`
	TareWeight    float64       `json:"tareWeight,omitempty"`
	NetWeight     float64       `json:"netWeight,omitempty"`
	PackagingType PackagingType `json:"packagingType,omitempty"`
}

// Item is one stock record. Operations stock tracks weight; tech-ops
// stock additionally tracks unit counts.
type Item struct {
	ID            string        `json:"id"`
	Type          string        `json:"type"`
	Category      Category      `json:"category"`
	Status        Status        `json:"status"`
	CustomName    string        `json:"customName,omitempty"`
	QuantityKg    float64       `json:"quantityKg"`
	QuantityUnits float64       `json:"quantityUnits,omitempty"`
	Location      string        `json:"location"`
	LastUpdated   time.Time     `json:"lastUpdated"`
	Images        []string      `json:"images,omitempty"`
	SalesDetails  *SalesDetails `json:"salesDetails,omitempty"`
}

// DefaultLocation is where auto-created stock lands when a work log
// brings in a material with no current record.
const DefaultLocation = "General Storage"
