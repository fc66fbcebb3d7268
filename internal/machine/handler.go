package machine

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/plantworks/facilityops/internal/transport"
)

type ServiceAPI interface {
	GetAll() ([]Machine, error)
	GetByID(id string) (*Machine, error)
	Create(m Machine) (*Machine, error)
	Update(updated Machine) error
	Delete(id string) error
	Toggle(id string) (*Machine, error)
	SimulateTelemetry() ([]Machine, error)
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

func (h *Handler) GetMachines(w http.ResponseWriter, r *http.Request) {
	machines, err := h.Service.GetAll()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, machines)
}

func (h *Handler) GetMachine(w http.ResponseWriter, r *http.Request) {
	m, err := h.Service.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) CreateMachine(w http.ResponseWriter, r *http.Request) {
	var m Machine
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Create(m)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateMachine(w http.ResponseWriter, r *http.Request) {
	var m Machine
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	m.ID = chi.URLParam(r, "id")

	if err := h.Service.Update(m); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) DeleteMachine(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(chi.URLParam(r, "id")); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) ToggleMachine(w http.ResponseWriter, r *http.Request) {
	m, err := h.Service.Toggle(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, m)
}

// SyncTelemetry refreshes readings the way a gateway poll would.
func (h *Handler) SyncTelemetry(w http.ResponseWriter, r *http.Request) {
	machines, err := h.Service.SimulateTelemetry()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, machines)
}
