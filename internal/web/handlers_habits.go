package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/halversen/daystart/internal/domain"
)

type createHabitRequest struct {
	Name          *string `json:"name"`
	Icon          *string `json:"icon"`
	Streak        *int    `json:"streak"`
	LastCompleted *string `json:"lastCompleted"`
}

func (h *Handler) ListHabits(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Habits(h.userID))
}

func (h *Handler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var req createHabitRequest
	if err := decodeJSON(r, &req); err != nil {
		respondInvalid(w, "Invalid habit data", map[string]string{"body": err.Error()})
		return
	}
	if req.Name == nil || *req.Name == "" {
		respondInvalid(w, "Invalid habit data", map[string]string{"name": "Required"})
		return
	}

	habit := &domain.Habit{
		Meta: domain.Meta{UserID: h.userID},
		Name: *req.Name,
	}
	if req.Icon != nil {
		habit.Icon = *req.Icon
	}
	if req.Streak != nil {
		habit.Streak = *req.Streak
	}
	if req.LastCompleted != nil {
		habit.LastCompleted = *req.LastCompleted
	}

	respondJSON(w, http.StatusOK, h.svc.CreateHabit(habit))
}

func (h *Handler) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	var patch domain.HabitPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondInvalid(w, "Invalid update data", map[string]string{"body": err.Error()})
		return
	}

	habit, err := h.svc.UpdateHabit(chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, http.StatusNotFound, "Habit not found")
		return
	}
	respondJSON(w, http.StatusOK, habit)
}

func (h *Handler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	if !h.svc.DeleteHabit(chi.URLParam(r, "id")) {
		respondError(w, http.StatusNotFound, "Habit not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
