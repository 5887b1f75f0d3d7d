// Package server initializes and runs the task board server: it opens the
// configured storage backend, applies migrations, wires the services and
// starts the HTTP API with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/soorajjain/taskBuddy-alter/internal/logging"
	"github.com/soorajjain/taskBuddy-alter/internal/server/config"
	"github.com/soorajjain/taskBuddy-alter/internal/server/httpapi"
	"github.com/soorajjain/taskBuddy-alter/internal/server/repositories/repomanager"
	"github.com/soorajjain/taskBuddy-alter/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	rm     repomanager.RepositoryManager
	server *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout)

	rm, err := repomanager.NewSQLRepositoryManager(c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	activityService := services.NewActivityService(rm, logger)
	taskService := services.NewTaskService(rm, activityService, logger)
	attachmentService := services.NewAttachmentService(c)

	s := httpapi.NewServer(c, taskService, activityService, attachmentService, logger)

	return &App{config: c, logger: logger, rm: rm, server: s}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.rm.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
