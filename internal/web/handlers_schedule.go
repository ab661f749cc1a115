package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/halversen/daystart/internal/domain"
)

type createScheduleEventRequest struct {
	Title     *string `json:"title"`
	Time      *string `json:"time"`
	Completed *bool   `json:"completed"`
	Date      *string `json:"date"`
}

func (h *Handler) ListSchedule(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.ScheduleEvents(h.userID, dateParam(r)))
}

func (h *Handler) CreateScheduleEvent(w http.ResponseWriter, r *http.Request) {
	var req createScheduleEventRequest
	if err := decodeJSON(r, &req); err != nil {
		respondInvalid(w, "Invalid event data", map[string]string{"body": err.Error()})
		return
	}

	details := make(map[string]string)
	if req.Title == nil || *req.Title == "" {
		details["title"] = "Required"
	}
	if req.Time == nil || *req.Time == "" {
		details["time"] = "Required"
	}
	if req.Date == nil || *req.Date == "" {
		details["date"] = "Required"
	}
	if len(details) > 0 {
		respondInvalid(w, "Invalid event data", details)
		return
	}

	event := &domain.ScheduleEvent{
		Meta:  domain.Meta{UserID: h.userID},
		Title: *req.Title,
		Time:  *req.Time,
		Date:  *req.Date,
	}
	if req.Completed != nil {
		event.Completed = *req.Completed
	}

	respondJSON(w, http.StatusOK, h.svc.CreateScheduleEvent(event))
}

func (h *Handler) UpdateScheduleEvent(w http.ResponseWriter, r *http.Request) {
	var patch domain.ScheduleEventPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondInvalid(w, "Invalid update data", map[string]string{"body": err.Error()})
		return
	}

	event, err := h.svc.UpdateScheduleEvent(chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, http.StatusNotFound, "Event not found")
		return
	}
	respondJSON(w, http.StatusOK, event)
}

func (h *Handler) DeleteScheduleEvent(w http.ResponseWriter, r *http.Request) {
	if !h.svc.DeleteScheduleEvent(chi.URLParam(r, "id")) {
		respondError(w, http.StatusNotFound, "Event not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
