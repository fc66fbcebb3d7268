package visitor

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/plantworks/facilityops/internal/csvcodec"
	"github.com/plantworks/facilityops/internal/transport"
)

type ServiceAPI interface {
	GetAll() ([]Visitor, error)
	Create(v Visitor) (*Visitor, error)
	Update(updated Visitor) error
	Checkout(id string) error
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

func (h *Handler) GetVisitors(w http.ResponseWriter, r *http.Request) {
	visitors, err := h.Service.GetAll()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, visitors)
}

func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var v Visitor
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Create(v)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateVisitor(w http.ResponseWriter, r *http.Request) {
	var v Visitor
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	v.ID = chi.URLParam(r, "id")

	if err := h.Service.Update(v); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, v)
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Checkout(chi.URLParam(r, "id")); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "checked_out"})
}

func (h *Handler) DeleteVisitor(w http.ResponseWriter, r *http.Request) {
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
