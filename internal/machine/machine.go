// Package machine tracks plant equipment and its live telemetry. The
// telemetry sweep stands in for an IoT gateway poll; a machine under
// manual control is never overwritten by the sweep.
package machine

type Status string

const (
	StatusOperational Status = "OPERATIONAL"
	StatusMaintenance Status = "MAINTENANCE"
	StatusOffline     Status = "OFFLINE"
)

type Machine struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Status          Status  `json:"status"`
	LastServiceDate string  `json:"lastServiceDate"`
	Temperature     float64 `json:"temperature,omitempty"`
	RPM             float64 `json:"rpm,omitempty"`
	PowerUsageKw    float64 `json:"powerUsage,omitempty"`
	ActiveHours     float64 `json:"activeHours,omitempty"`
	IsManualControl bool    `json:"isManualControl,omitempty"`
}

// DefaultMachines seeds the plant floor on first run.
func DefaultMachines() []Machine {
	return []Machine{
		{ID: "m1", Name: "Shredder X2000", Status: StatusOperational, LastServiceDate: "2023-10-01", Temperature: 65, RPM: 1200, PowerUsageKw: 45},
		{ID: "m2", Name: "Conveyor Belt A", Status: StatusMaintenance, LastServiceDate: "2023-10-15", Temperature: 25},
		{ID: "m3", Name: "Hydraulic Press", Status: StatusOperational, LastServiceDate: "2023-09-20", Temperature: 40, PowerUsageKw: 12},
		{ID: "m4", Name: "Forklift 1", Status: StatusOperational, LastServiceDate: "2023-10-05", Temperature: 75, RPM: 2400, PowerUsageKw: 8},
	}
}
