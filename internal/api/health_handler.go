package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/task-service/internal/api/shared"
	"github.com/phrazzld/task-service/internal/config"
	"github.com/phrazzld/task-service/internal/platform/logger"
)

// Well-known paths listed by the index endpoint.
const (
	HealthPath = "/health"
	ReadyPath  = "/ready"
	TasksPath  = "/tasks"
)

// HealthHandler serves the liveness, readiness and index endpoints.
// None of them depend on any other component.
type HealthHandler struct {
	service     config.ServiceConfig
	metricsPath string
	logger      *slog.Logger
}

// NewHealthHandler creates a HealthHandler. An empty metricsPath leaves the
// metrics endpoint out of the index.
func NewHealthHandler(svc config.ServiceConfig, metricsPath string, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &HealthHandler{
		service:     svc,
		metricsPath: metricsPath,
		logger:      logger.With(slog.String("component", "health_handler")),
	}
}

// Health handles GET /health requests
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger.FromContextOrDefault(r.Context(), h.logger).Info("health check called")

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: h.service.Name,
	})
}

// Ready handles GET /ready requests
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, ReadyResponse{Status: "ready"})
}

// Index handles GET / requests
func (h *HealthHandler) Index(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, IndexResponse{
		Service: h.service.Name,
		Version: h.service.Version,
		Endpoints: EndpointsResponse{
			Health:  HealthPath,
			Ready:   ReadyPath,
			Tasks:   TasksPath,
			Metrics: h.metricsPath,
		},
	})
}

// NotFound answers requests that match no route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, msgNotFound)
}

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
