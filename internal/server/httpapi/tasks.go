package httpapi

import (
	"net/http"

	"github.com/soorajjain/taskBuddy-alter/internal/server/models"
	"github.com/soorajjain/taskBuddy-alter/internal/server/services"
)

type createTaskRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    models.Category     `json:"category"`
	DueOn       string              `json:"due_on"`
	TrackStatus models.TrackStatus  `json:"track_status"`
	Attachments []models.Attachment `json:"attachments"`
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var body createTaskRequest
	if err := decodeJSON(r, &body); err != nil {
		writeErr(w, err)
		return
	}

	task, err := s.tasks.Create(r.Context(), ownerFromContext(r.Context()), services.TaskInput{
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
		DueOn:       body.DueOn,
		TrackStatus: body.TrackStatus,
		Attachments: body.Attachments,
	})
	if err != nil {
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.TaskFilter{
		Category:  models.Category(q.Get("category")),
		Status:    models.TrackStatus(q.Get("status")),
		DueBefore: q.Get("due_before"),
		DueAfter:  q.Get("due_after"),
	}

	tasks, err := s.tasks.List(r.Context(), ownerFromContext(r.Context()), filter)
	if err != nil {
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	var upd models.TaskUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeErr(w, err)
		return
	}

	taskID := r.PathValue("id")
	if err := s.tasks.Update(r.Context(), ownerFromContext(r.Context()), taskID, upd); err != nil {
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("id")
	if err := s.tasks.Delete(r.Context(), ownerFromContext(r.Context()), taskID); err != nil {
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type reorderRequest struct {
	TaskIDs []string `json:"taskIds"`
}

func (s *Server) reorderTasks(w http.ResponseWriter, r *http.Request) {
	var body reorderRequest
	if err := decodeJSON(r, &body); err != nil {
		writeErr(w, err)
		return
	}

	if err := s.tasks.Reorder(r.Context(), ownerFromContext(r.Context()), body.TaskIDs); err != nil {
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
