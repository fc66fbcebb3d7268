// Package logistics tracks outbound material dispatches; each entry is
// one vehicle load with an optional per-item weighbridge breakdown.
package logistics

import "math"

// ItemBreakdown is one weighed item on a dispatch. Net weight is gross
// minus tare, floored at zero.
type ItemBreakdown struct {
	Name        string  `json:"name"`
	GrossWeight float64 `json:"grossWeight"`
	TareWeight  float64 `json:"tareWeight"`
	NetWeight   float64 `json:"netWeight"`
	PhotoURL    string  `json:"photoUrl,omitempty"`
}

// Entry is one dispatch record. TotalNetWeight is the sum of the
// breakdown nets when a breakdown exists, otherwise entered directly.
type Entry struct {
	ID               string          `json:"id"`
	CustomerName     string          `json:"customerName"`
	VehicleNo        string          `json:"vehicleNo,omitempty"`
	Date             string          `json:"date"`
	TotalNetWeight   float64         `json:"totalNetWeight"`
	ItemsDescription string          `json:"itemsDescription"`
	Breakdown        []ItemBreakdown `json:"breakdown,omitempty"`
	RecordedBy       string          `json:"recordedBy"`
}

// NetWeight derives an item's net from its gross and tare.
func NetWeight(gross, tare float64) float64 {
	return math.Max(0, gross-tare)
}

// Normalize recomputes each breakdown net and the entry total from the
// recorded gross and tare weights.
func (e *Entry) Normalize() {
	if len(e.Breakdown) == 0 {
		return
	}
	var total float64
	for i := range e.Breakdown {
		e.Breakdown[i].NetWeight = NetWeight(e.Breakdown[i].GrossWeight, e.Breakdown[i].TareWeight)
		total += e.Breakdown[i].NetWeight
	}
	e.TotalNetWeight = total
}
