package logistics

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/plantworks/facilityops/internal/csvcodec"
	"github.com/plantworks/facilityops/internal/transport"
)

type ServiceAPI interface {
	GetAll() ([]Entry, error)
	GetByID(id string) (*Entry, error)
	Create(entry Entry) (*Entry, error)
	Update(updated Entry) error
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

func (h *Handler) GetEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.GetAll()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, entries)
}

func (h *Handler) GetEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.Service.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, entry)
}

func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Create(entry)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	entry.ID = chi.URLParam(r, "id")

	if err := h.Service.Update(entry); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, entry)
}

func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
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
