package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/halversen/daystart/internal/domain"
)

type createQuickLinkRequest struct {
	Name  *string `json:"name"`
	URL   *string `json:"url"`
	Icon  *string `json:"icon"`
	Order *int    `json:"order"`
}

func (h *Handler) ListQuickLinks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.QuickLinks(h.userID))
}

func (h *Handler) CreateQuickLink(w http.ResponseWriter, r *http.Request) {
	var req createQuickLinkRequest
	if err := decodeJSON(r, &req); err != nil {
		respondInvalid(w, "Invalid link data", map[string]string{"body": err.Error()})
		return
	}

	details := make(map[string]string)
	if req.Name == nil || *req.Name == "" {
		details["name"] = "Required"
	}
	if req.URL == nil || *req.URL == "" {
		details["url"] = "Required"
	}
	if len(details) > 0 {
		respondInvalid(w, "Invalid link data", details)
		return
	}

	link := &domain.QuickLink{
		Meta: domain.Meta{UserID: h.userID},
		Name: *req.Name,
		URL:  *req.URL,
	}
	if req.Icon != nil {
		link.Icon = *req.Icon
	}
	if req.Order != nil {
		link.Order = *req.Order
	}

	respondJSON(w, http.StatusOK, h.svc.CreateQuickLink(link))
}

func (h *Handler) UpdateQuickLink(w http.ResponseWriter, r *http.Request) {
	var patch domain.QuickLinkPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondInvalid(w, "Invalid update data", map[string]string{"body": err.Error()})
		return
	}

	link, err := h.svc.UpdateQuickLink(chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, http.StatusNotFound, "Link not found")
		return
	}
	respondJSON(w, http.StatusOK, link)
}

func (h *Handler) DeleteQuickLink(w http.ResponseWriter, r *http.Request) {
	if !h.svc.DeleteQuickLink(chi.URLParam(r, "id")) {
		respondError(w, http.StatusNotFound, "Link not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
