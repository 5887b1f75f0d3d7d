package httpapi

import "net/http"

func (s *Server) listActivity(w http.ResponseWriter, r *http.Request) {
	taskID := r.URL.Query().Get("task_id")

	entries, err := s.activity.List(r.Context(), ownerFromContext(r.Context()), taskID)
	if err != nil {
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
