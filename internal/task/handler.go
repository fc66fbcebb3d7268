package task

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/plantworks/facilityops/internal"
	"github.com/plantworks/facilityops/internal/transport"
	"github.com/plantworks/facilityops/internal/user"
)

type ServiceAPI interface {
	GetVisible(viewer *user.User) ([]Task, error)
	GetByID(id string) (*Task, error)
	Create(t Task) (*Task, error)
	UpdateStatus(id string, status Status, feedback string) error
	Delete(id string) error
	ExportCSV() (string, string, error)
}

type UserLookup interface {
	GetByID(id string) (*user.User, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Users   UserLookup
}

func NewHandler(service ServiceAPI, users UserLookup) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Service:     service,
		Users:       users,
	}
}

// GetTasks lists the board as the viewer named by X-User-ID sees it.
// The identity middleware stamps that header onto the context.
func (h *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	viewerID := internal.UserIDFromContext(r.Context())
	if viewerID == "" {
		h.WriteError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	viewer, err := h.Users.GetByID(viewerID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	tasks, err := h.Service.GetVisible(viewer)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, tasks)
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	t, err := h.Service.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var t Task
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Create(t)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status   Status `json:"status"`
		Feedback string `json:"feedback"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.UpdateStatus(chi.URLParam(r, "id"), body.Status, body.Feedback); err != nil {
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
