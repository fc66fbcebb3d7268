// Package insights asks an external analysis service to comment on
// facility data. Everything here is best effort; callers show the
// degraded message when the service is off or unreachable.
package insights

import (
	"context"

	"github.com/plantworks/facilityops/internal/inventory"
	"github.com/plantworks/facilityops/internal/machine"
	"github.com/plantworks/facilityops/internal/worklog"
)

// AnalysisResult is the structured verdict on a window of work logs.
type AnalysisResult struct {
	Summary         string   `json:"summary"`
	EfficiencyScore int      `json:"efficiencyScore"`
	Highlights      []string `json:"highlights"`
	Concerns        []string `json:"concerns"`
}

// Analyzer produces facility commentary. The HTTP client is the real
// implementation; tests substitute their own.
type Analyzer interface {
	// InventoryInsights returns free-text strategic notes on current
	// stock and machine state.
	InventoryInsights(ctx context.Context, items []inventory.Item, machines []machine.Machine) (string, error)

	// AnalyzeEfficiency scores a recent window of work logs.
	AnalyzeEfficiency(ctx context.Context, logs []worklog.WorkLog) (*AnalysisResult, error)
}

// recentLogLimit caps the window sent for analysis, newest first.
const recentLogLimit = 60

// RecentWindow trims a newest-first log slice to the analysis window.
func RecentWindow(logs []worklog.WorkLog) []worklog.WorkLog {
	if len(logs) > recentLogLimit {
		return logs[:recentLogLimit]
	}
	return logs
}
