package web

import (
	"net/http"

	"github.com/halversen/daystart/internal/domain"
)

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.UserSettings(h.userID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Settings not found")
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch domain.SettingsPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondInvalid(w, "Invalid settings data", map[string]string{"body": err.Error()})
		return
	}

	settings, err := h.svc.UpdateUserSettings(h.userID, patch)
	if err != nil {
		respondError(w, http.StatusNotFound, "Settings not found")
		return
	}
	respondJSON(w, http.StatusOK, settings)
}
