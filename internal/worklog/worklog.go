// Package worklog records daily work output. Logging a recovered
// material feeds the inventory through the event bus; group dismantling
// batches are split across contributors by the distribution engine in
// batch.go.
package worklog

import (
	"math"
	"time"
)

type WorkCategory string

const (
	// Production
	CategoryDismantling      WorkCategory = "DISMANTLING"
	CategoryCleaning         WorkCategory = "CLEANING"
	CategorySorting          WorkCategory = "SORTING"
	CategoryLoadingUnloading WorkCategory = "LOADING_UNLOADING"
	CategoryOtherProd        WorkCategory = "OTHER_PROD"

	// Tech ops
	CategorySoftware    WorkCategory = "SOFTWARE"
	CategoryTechSorting WorkCategory = "TECH_SORTING"
	CategoryTesting     WorkCategory = "TESTING"
	CategoryDataWiping  WorkCategory = "DATA_WIPING"
	CategoryRepair      WorkCategory = "REPAIR"
	CategoryOtherTech   WorkCategory = "OTHER_TECH"

	// General
	CategoryLeave           WorkCategory = "LEAVE"
	CategoryAdministration  WorkCategory = "ADMINISTRATION"
	CategoryMaintenanceWork WorkCategory = "MAINTENANCE_WORK"
)

// techCategories route their material output to the tech-ops side of
// the inventory; everything else counts as plant operations.
var techCategories = map[WorkCategory]bool{
	CategoryTechSorting: true,
	CategoryTesting:     true,
	CategoryDataWiping:  true,
	CategorySoftware:    true,
	CategoryRepair:      true,
	CategoryOtherTech:   true,
}

func (c WorkCategory) IsTech() bool {
	return techCategories[c]
}

type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "PENDING"
	StatusApproved ApprovalStatus = "APPROVED"
	StatusRejected ApprovalStatus = "REJECTED"
)

type LoadingType string

const (
	Loading   LoadingType = "LOADING"
	Unloading LoadingType = "UNLOADING"
)

// WorkLog is one worker's output for one day. UserName is a snapshot
// taken at creation time; it does not follow later renames.
type WorkLog struct {
	ID              string       `json:"id"`
	UserID          string       `json:"userId"`
	UserName        string       `json:"userName"`
	Date            string       `json:"date"`
	Category        WorkCategory `json:"category"`
	TaskDescription string       `json:"taskDescription"`
	BatchID         string       `json:"batchId,omitempty"`

	// Time tracking, HH:MM local clock times
	HoursWorked    float64 `json:"hoursWorked,omitempty"`
	StartTime      string  `json:"startTime,omitempty"`
	EndTime        string  `json:"endTime,omitempty"`
	BreakStartTime string  `json:"breakStartTime,omitempty"`
	BreakEndTime   string  `json:"breakEndTime,omitempty"`

	// Output
	WeightProcessedKg float64 `json:"weightProcessedKg,omitempty"`
	QuantityProcessed float64 `json:"quantityProcessed,omitempty"`
	SourceItem        string  `json:"sourceItem,omitempty"`
	SourceQty         float64 `json:"sourceQty,omitempty"`
	MaterialType      string  `json:"materialType,omitempty"`

	// Category specific payloads
	Location            string      `json:"location,omitempty"`
	LoadingType         LoadingType `json:"loadingType,omitempty"`
	DeviceType          string      `json:"deviceType,omitempty"`
	TestType            string      `json:"testType,omitempty"`
	TestOutcome         string      `json:"testOutcome,omitempty"`
	ProblemDescription  string      `json:"problemDescription,omitempty"`
	SolutionDescription string      `json:"solutionDescription,omitempty"`
	DiagnosticsResult   string      `json:"diagnosticsResult,omitempty"`
	SoftwareName        string      `json:"softwareName,omitempty"`
	StorageType         string      `json:"storageType,omitempty"`
	StorageSize         string      `json:"storageSize,omitempty"`

	Status ApprovalStatus `json:"status"`

	// InventoryApplied marks that this log's material weight has been
	// credited to inventory, so edits never credit it twice.
	InventoryApplied bool `json:"inventoryApplied,omitempty"`
}

const clockLayout = "15:04"

func parseClock(hhmm string) (time.Time, bool) {
	t, err := time.Parse(clockLayout, hhmm)
	return t, err == nil
}

// ComputeHours derives hours worked from shift clock times. The break
// is subtracted only when its span is positive, the result is clamped
// at zero and rounded to two decimals.
func ComputeHours(start, end, breakStart, breakEnd string) float64 {
	s, okS := parseClock(start)
	e, okE := parseClock(end)
	if !okS || !okE {
		return 0
	}

	worked := e.Sub(s)

	if bs, ok := parseClock(breakStart); ok {
		if be, ok := parseClock(breakEnd); ok {
			if brk := be.Sub(bs); brk > 0 {
				worked -= brk
			}
		}
	}

	hours := worked.Hours()
	if hours < 0 {
		hours = 0
	}
	return round2(hours)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DayStamp formats a time as the YYYY-MM-DD date key logs are grouped by.
func DayStamp(t time.Time) string {
	return t.Format("2006-01-02")
}
