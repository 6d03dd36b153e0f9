package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-service/internal/config"
	"github.com/phrazzld/task-service/internal/domain"
	"github.com/phrazzld/task-service/internal/platform/memory"
	"github.com/phrazzld/task-service/internal/platform/metrics"
	"github.com/phrazzld/task-service/internal/service"
	"github.com/phrazzld/task-service/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger  *slog.Logger
	metrics *metrics.Metrics

	// Stores (using interfaces for proper abstraction)
	taskStore store.TaskStore

	// Service interfaces
	taskService service.TaskService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	var seed []domain.Task
	if cfg.Store.Seed {
		seed = domain.SampleTasks()
	}

	taskStore, err := memory.NewTaskStore(logger, seed...)
	if err != nil {
		return nil, fmt.Errorf("failed to create task store: %w", err)
	}
	app.taskStore = taskStore
	logger.Info("task store initialized", slog.Int("seeded_tasks", len(seed)))

	app.taskService, err = service.NewTaskService(app.taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	if cfg.Metrics.Enabled {
		app.metrics = metrics.New(cfg.Service.Version, app.taskStore, logger)
		logger.Info("metrics enabled", slog.String("path", cfg.Metrics.Path))
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
// The in-memory store holds no external resources; its contents are
// discarded with the process.
func (app *application) cleanup() {
	if n, err := app.taskStore.Count(context.Background()); err == nil {
		app.logger.Info("discarding in-memory tasks", slog.Int("count", n))
	}
	app.logger.Info("application cleanup completed")
}
