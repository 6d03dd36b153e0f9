package api

import (
	"github.com/phrazzld/task-service/internal/domain"
)

// Common request/response structures

// CreateTaskRequest defines the payload for creating a task.
// Description and Done are pointers so that an absent field can be told
// apart from its zero value.
type CreateTaskRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description *string `json:"description"`
	Done        *bool   `json:"done"`
}

// UpdateTaskRequest defines the payload for a partial task update.
// Nil fields leave the stored value unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Done        *bool   `json:"done"`
}

// Patch converts the request into a domain patch.
func (r UpdateTaskRequest) Patch() domain.TaskPatch {
	return domain.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		Done:        r.Done,
	}
}

// TaskListResponse is the body of GET /tasks.
type TaskListResponse struct {
	Tasks []domain.Task `json:"tasks"`
	Count int           `json:"count"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ReadyResponse is the body of GET /ready.
type ReadyResponse struct {
	Status string `json:"status"`
}

// EndpointsResponse lists the well-known paths of the service.
type EndpointsResponse struct {
	Health  string `json:"health"`
	Ready   string `json:"ready"`
	Tasks   string `json:"tasks"`
	Metrics string `json:"metrics,omitempty"`
}

// IndexResponse is the body of GET /.
type IndexResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints EndpointsResponse `json:"endpoints"`
}
