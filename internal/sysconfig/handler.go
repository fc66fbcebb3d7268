package sysconfig

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/plantworks/facilityops/internal/transport"
)

type ServiceAPI interface {
	Get() (*AppConfig, error)
	UpdateAdminRemark(remark string) error
	UpdateCloudBackupURL(url string) error
	Options(kind OptionKind) (OptionList, error)
	AddCustomOption(kind OptionKind, value string) error
	RemoveCustomOption(kind OptionKind, value string) error
	RenameCustomOption(kind OptionKind, oldName, newName string) error
	WaterLevels() (*WaterLevels, error)
	UpdateWaterLevels(levels WaterLevels) error
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

func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Service.Get()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, cfg)
}

func (h *Handler) UpdateRemark(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Remark string `json:"remark"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.UpdateAdminRemark(body.Remark); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) UpdateBackupURL(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.UpdateCloudBackupURL(body.URL); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.Options(OptionKind(chi.URLParam(r, "kind")))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"options": list.All(),
		"custom":  list.Custom,
	})
}

func (h *Handler) AddOption(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.AddCustomOption(OptionKind(chi.URLParam(r, "kind")), body.Value); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

func (h *Handler) RenameOption(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OldName string `json:"oldName"`
		NewName string `json:"newName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.RenameCustomOption(OptionKind(chi.URLParam(r, "kind")), body.OldName, body.NewName); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "renamed"})
}

func (h *Handler) RemoveOption(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.RemoveCustomOption(OptionKind(chi.URLParam(r, "kind")), body.Value); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

func (h *Handler) GetWaterLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.Service.WaterLevels()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, levels)
}

func (h *Handler) UpdateWaterLevels(w http.ResponseWriter, r *http.Request) {
	var levels WaterLevels
	if err := json.NewDecoder(r.Body).Decode(&levels); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.UpdateWaterLevels(levels); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, levels)
}
