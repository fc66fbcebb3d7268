package inventory

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
	GetAll() ([]Item, error)
	GetByID(id string) (*Item, error)
	GetByStatus(status Status) ([]Item, error)
	GetByCategory(category Category) ([]Item, error)
	Create(item Item) (*Item, error)
	Update(updated Item) error
	Delete(id string) error
	MoveStockToSales(ctx context.Context, itemID string, weightKg, units float64, details *SalesDetails) (*Item, error)
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

func (h *Handler) GetItems(w http.ResponseWriter, r *http.Request) {
	if status := r.URL.Query().Get("status"); status != "" {
		items, err := h.Service.GetByStatus(Status(status))
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, items)
		return
	}
	if category := r.URL.Query().Get("category"); category != "" {
		items, err := h.Service.GetByCategory(Category(category))
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, items)
		return
	}

	items, err := h.Service.GetAll()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Service.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var item Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Create(item)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var item Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item.ID = chi.URLParam(r, "id")

	if err := h.Service.Update(item); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(chi.URLParam(r, "id")); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) MoveToSales(w http.ResponseWriter, r *http.Request) {
	var body struct {
		WeightKg     float64       `json:"weightKg"`
		Units        float64       `json:"units"`
		SalesDetails *SalesDetails `json:"salesDetails"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sale, err := h.Service.MoveStockToSales(r.Context(), chi.URLParam(r, "id"), body.WeightKg, body.Units, body.SalesDetails)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, sale)
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
