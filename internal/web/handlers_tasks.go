package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/halversen/daystart/internal/domain"
)

type createTaskRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
	Order     *int    `json:"order"`
}

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Tasks(h.userID))
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondInvalid(w, "Invalid task data", map[string]string{"body": err.Error()})
		return
	}
	if req.Text == nil || *req.Text == "" {
		respondInvalid(w, "Invalid task data", map[string]string{"text": "Required"})
		return
	}

	task := &domain.Task{
		Meta: domain.Meta{UserID: h.userID},
		Text: *req.Text,
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if req.Order != nil {
		task.Order = *req.Order
	}

	respondJSON(w, http.StatusOK, h.svc.CreateTask(task))
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var patch domain.TaskPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondInvalid(w, "Invalid update data", map[string]string{"body": err.Error()})
		return
	}

	task, err := h.svc.UpdateTask(chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, http.StatusNotFound, "Task not found")
		return
	}
	respondJSON(w, http.StatusOK, task)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if !h.svc.DeleteTask(chi.URLParam(r, "id")) {
		respondError(w, http.StatusNotFound, "Task not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
