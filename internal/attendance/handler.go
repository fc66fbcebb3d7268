package attendance

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/plantworks/facilityops/internal/csvcodec"
	"github.com/plantworks/facilityops/internal/transport"
)

type ServiceAPI interface {
	GetAll() ([]Record, error)
	GetByDate(date string) ([]Record, error)
	Mark(record Record) (*Record, error)
	SaveAll(batch []Record) error
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

func (h *Handler) GetRecords(w http.ResponseWriter, r *http.Request) {
	if date := r.URL.Query().Get("date"); date != "" {
		records, err := h.Service.GetByDate(date)
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, records)
		return
	}

	records, err := h.Service.GetAll()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) Mark(w http.ResponseWriter, r *http.Request) {
	var record Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.Service.Mark(record)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, saved)
}

// BulkSave applies a biometric sync batch.
func (h *Handler) BulkSave(w http.ResponseWriter, r *http.Request) {
	var batch []Record
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.SaveAll(batch); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]int{"saved": len(batch)})
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
