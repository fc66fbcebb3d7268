package rest

import (
	"io"
	"net/http"
	"time"

	"github.com/plantworks/facilityops/internal/transport"
)

// StoreAPI is the record store surface exposed for administration.
type StoreAPI interface {
	Backup() ([]byte, error)
	Restore(data []byte) error
	Reset() error
}

// AdminHandler serves full-store backup, restore and factory reset.
type AdminHandler struct {
	*transport.BaseHandler
	Store StoreAPI
}

func NewAdminHandler(store StoreAPI) *AdminHandler {
	return &AdminHandler{
		BaseHandler: transport.NewBaseHandler(nil),
		Store:       store,
	}
}

func (h *AdminHandler) Backup(w http.ResponseWriter, r *http.Request) {
	data, err := h.Store.Backup()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	filename := "facilityops_backup_" + time.Now().Format("2006-01-02") + ".json"
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.Logger.Error("failed to write backup response", "error", err)
	}
}

func (h *AdminHandler) Restore(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	if err := h.Store.Restore(data); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.Logger.Info("store restored from backup", "size_bytes", len(data))
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "restored"})
}

func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.Logger.Warn("store factory reset via API")
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
