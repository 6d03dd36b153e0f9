package store

import (
	"context"

	"github.com/phrazzld/task-service/internal/domain"
)

// TaskStore defines the interface for task data persistence.
//
// Implementations must be safe for concurrent use. Tasks handed out are
// copies; mutating them has no effect on stored state.
type TaskStore interface {
	// List returns every task in insertion order. The result is never nil.
	List(ctx context.Context) ([]domain.Task, error)

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Create assigns the next ID to task (one more than the current maximum,
	// or 1 when empty), stores it and writes the ID back into task.
	// Returns ErrInvalidEntity if the task fails domain validation.
	Create(ctx context.Context, task *domain.Task) error

	// Update applies patch to the task with the given ID atomically and
	// returns the result. Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)

	// Delete removes a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// Count returns the number of stored tasks.
	Count(ctx context.Context) (int, error)
}
