// Package httpapi exposes the task board over HTTP/JSON. All /api routes
// require a Bearer token; the owner identity extracted from it scopes every
// operation.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	sc "github.com/soorajjain/taskBuddy-alter/internal/server/config"

	"github.com/soorajjain/taskBuddy-alter/internal/logging"
	"github.com/soorajjain/taskBuddy-alter/internal/server/models"
	"github.com/soorajjain/taskBuddy-alter/internal/server/services"
)

// TaskManager is the slice of TaskService the handlers need.
type TaskManager interface {
	Create(ctx context.Context, ownerID string, input services.TaskInput) (*models.Task, error)
	List(ctx context.Context, ownerID string, filter models.TaskFilter) ([]*models.Task, error)
	Update(ctx context.Context, ownerID, taskID string, upd models.TaskUpdate) error
	Delete(ctx context.Context, ownerID, taskID string) error
	Reorder(ctx context.Context, ownerID string, orderedTaskIDs []string) error
}

// ActivityBrowser reads the audit log.
type ActivityBrowser interface {
	List(ctx context.Context, ownerID, taskID string) ([]*models.ActivityEntry, error)
}

// AttachmentPresigner hands out short-lived object-storage URLs.
type AttachmentPresigner interface {
	PresignUpload(ctx context.Context, ownerID string) (string, string, error)
	PresignDownload(ctx context.Context, ownerID, key string) (string, error)
}

type Server struct {
	config      *sc.Config
	tasks       TaskManager
	activity    ActivityBrowser
	attachments AttachmentPresigner
	logger      logging.Logger

	httpServer *http.Server
}

func NewServer(config *sc.Config, tasks TaskManager, activity ActivityBrowser,
	attachments AttachmentPresigner, logger logging.Logger) *Server {
	return &Server{
		config:      config,
		tasks:       tasks,
		activity:    activity,
		attachments: attachments,
		logger:      logger.With("module", "httpapi"),
	}
}

// Handler builds the route table. Split out from Run so tests can drive it
// through httptest without a listening socket.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/tasks", s.createTask)
	mux.HandleFunc("GET /api/tasks", s.listTasks)
	mux.HandleFunc("PATCH /api/tasks/{id}", s.updateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", s.deleteTask)
	mux.HandleFunc("PUT /api/tasks/order", s.reorderTasks)

	mux.HandleFunc("GET /api/activity", s.listActivity)

	mux.HandleFunc("POST /api/attachments/presign", s.presignUpload)
	mux.HandleFunc("GET /api/attachments/{key...}", s.presignDownload)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return chain(mux, s.withRecover, s.withRequestLog, s.withAuth)
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {

	s.httpServer = &http.Server{
		Addr:              s.config.EndpointAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "http server starting", "addr", s.config.EndpointAddr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.logger.Info(ctx, "http server stopping")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-errCh
}
