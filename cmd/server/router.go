package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/task-service/internal/api"
	apiMiddleware "github.com/phrazzld/task-service/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	if app.metrics != nil {
		r.Use(apiMiddleware.Metrics(app.metrics))
	}
	r.Use(middleware.Recoverer)

	metricsPath := ""
	if app.metrics != nil {
		metricsPath = app.config.Metrics.Path
	}

	healthHandler := api.NewHealthHandler(app.config.Service, metricsPath, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	r.Get("/", healthHandler.Index)
	r.Get(api.HealthPath, healthHandler.Health)
	r.Get(api.ReadyPath, healthHandler.Ready)

	r.Route(api.TasksPath, func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Get("/{id}", taskHandler.GetTask)
		r.Put("/{id}", taskHandler.UpdateTask)
		r.Delete("/{id}", taskHandler.DeleteTask)
	})

	if app.metrics != nil {
		r.Method(http.MethodGet, metricsPath, app.metrics.Handler())
	}

	return r
}
