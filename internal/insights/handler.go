package insights

import (
	"net/http"
	"time"

	"github.com/plantworks/facilityops/internal"
	"github.com/plantworks/facilityops/internal/inventory"
	"github.com/plantworks/facilityops/internal/machine"
	"github.com/plantworks/facilityops/internal/transport"
	"github.com/plantworks/facilityops/internal/worklog"
)

// Analysis calls go out to an external service, so they get a longer
// deadline than ordinary store reads.
const analysisTimeout = 30 * time.Second

type InventoryAPI interface {
	GetAll() ([]inventory.Item, error)
}

type MachineAPI interface {
	GetAll() ([]machine.Machine, error)
}

type WorkLogAPI interface {
	GetAll() ([]worklog.WorkLog, error)
}

type Handler struct {
	*transport.BaseHandler
	Analyzer  Analyzer
	Inventory InventoryAPI
	Machines  MachineAPI
	Logs      WorkLogAPI
}

func NewHandler(analyzer Analyzer, inv InventoryAPI, mach MachineAPI, logs WorkLogAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Analyzer:    analyzer,
		Inventory:   inv,
		Machines:    mach,
		Logs:        logs,
	}
}

func (h *Handler) InventoryInsights(w http.ResponseWriter, r *http.Request) {
	items, err := h.Inventory.GetAll()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	machines, err := h.Machines.GetAll()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	ctx, cancel := internal.WithTimeout(r.Context(), analysisTimeout)
	defer cancel()

	text, err := h.Analyzer.InventoryInsights(ctx, items, machines)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"insights": text})
}

func (h *Handler) EfficiencyAnalysis(w http.ResponseWriter, r *http.Request) {
	logs, err := h.Logs.GetAll()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	ctx, cancel := internal.WithTimeout(r.Context(), analysisTimeout)
	defer cancel()

	result, err := h.Analyzer.AnalyzeEfficiency(ctx, logs)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, result)
}
