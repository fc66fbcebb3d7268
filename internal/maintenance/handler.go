package maintenance

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/plantworks/facilityops/internal/csvcodec"
	"github.com/plantworks/facilityops/internal/transport"
)

type ServiceAPI interface {
	GetForTechnician(technicianID string) ([]Task, error)
	Schedule(task Task) (*Task, error)
	UpdateStatus(id string, status Status) error
	Upcoming() ([]Task, error)
	Delete(id string) error
	ExportCSV() (string, string, error)
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

// GetTasks lists the schedule. Technicians pass technicianId to see
// only their own jobs.
func (h *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.Service.GetForTechnician(r.URL.Query().Get("technicianId"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, tasks)
}

func (h *Handler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.Service.Upcoming()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, tasks)
}

func (h *Handler) ScheduleTask(w http.ResponseWriter, r *http.Request) {
	var task Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Schedule(task)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.UpdateStatus(chi.URLParam(r, "id"), body.Status); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": string(body.Status)})
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(chi.URLParam(r, "id")); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	filename, body, err := h.Service.ExportCSV()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
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
