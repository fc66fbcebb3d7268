package worklog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/plantworks/facilityops/internal/csvcodec"
	"github.com/plantworks/facilityops/internal/transport"
)

type ServiceAPI interface {
	GetAll() ([]WorkLog, error)
	GetByUser(userID string) ([]WorkLog, error)
	GetByID(id string) (*WorkLog, error)
	Create(ctx context.Context, log WorkLog) (*WorkLog, error)
	Update(updated WorkLog) error
	SetStatus(id string, status ApprovalStatus) error
	Delete(id string) error
	YesterdayPerformance() (*PerformanceSummary, error)
	ConfirmDistribution(ctx context.Context, plan *DistributionPlan) ([]WorkLog, error)
	ExportCSV(logs []WorkLog) (string, string)
	ImportCSV(text string) (csvcodec.ImportStats, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Service:     service,
	}
}

func (h *Handler) GetLogs(w http.ResponseWriter, r *http.Request) {
	if userID := r.URL.Query().Get("userId"); userID != "" {
		logs, err := h.Service.GetByUser(userID)
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, logs)
		return
	}

	logs, err := h.Service.GetAll()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, logs)
}

func (h *Handler) GetLog(w http.ResponseWriter, r *http.Request) {
	log, err := h.Service.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, log)
}

func (h *Handler) CreateLog(w http.ResponseWriter, r *http.Request) {
	var log WorkLog
	if err := json.NewDecoder(r.Body).Decode(&log); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Create(r.Context(), log)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateLog(w http.ResponseWriter, r *http.Request) {
	var log WorkLog
	if err := json.NewDecoder(r.Body).Decode(&log); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	log.ID = chi.URLParam(r, "id")

	if err := h.Service.Update(log); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, log)
}

func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status ApprovalStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.SetStatus(chi.URLParam(r, "id"), body.Status); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": string(body.Status)})
}

func (h *Handler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(chi.URLParam(r, "id")); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) YesterdaySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.YesterdayPerformance()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, summary)
}

// BatchPreviewRequest carries the inputs of a group dismantling split.
type BatchPreviewRequest struct {
	Contributors   map[string]string `json:"contributors"`
	Sources        []SourceEntry     `json:"sources"`
	Outputs        []OutputEntry     `json:"outputs"`
	Date           string            `json:"date"`
	StartTime      string            `json:"startTime"`
	EndTime        string            `json:"endTime"`
	BreakStartTime string            `json:"breakStartTime"`
	BreakEndTime   string            `json:"breakEndTime"`
}

// PreviewBatch computes the proportional split without writing
// anything. The client may edit weights in the returned plan and post
// it back to ConfirmBatch.
func (h *Handler) PreviewBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	plan, err := BuildDistribution(req.Contributors, req.Sources, req.Outputs)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	plan.Date = req.Date
	plan.StartTime = req.StartTime
	plan.EndTime = req.EndTime
	plan.BreakStartTime = req.BreakStartTime
	plan.BreakEndTime = req.BreakEndTime

	h.WriteJSON(w, http.StatusOK, plan)
}

func (h *Handler) ConfirmBatch(w http.ResponseWriter, r *http.Request) {
	var plan DistributionPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.ConfirmDistribution(r.Context(), &plan)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"count": len(created),
		"logs":  created,
	})
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	logs, err := h.Service.GetAll()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	filename, body := h.Service.ExportCSV(logs)
	h.WriteCSV(w, filename, body)
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	text, err := io.ReadAll(r.Body)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	stats, err := h.Service.ImportCSV(string(text))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, stats)
}
