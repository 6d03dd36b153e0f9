package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/phrazzld/task-service/internal/domain"
	"github.com/stretchr/testify/require"
)

var taskSeq atomic.Int64

// TaskOption customizes a task built by MustCreateTaskForTest.
type TaskOption func(*domain.Task)

// WithTaskID sets the task ID.
func WithTaskID(id int64) TaskOption {
	return func(t *domain.Task) { t.ID = id }
}

// WithTaskTitle sets the task title.
func WithTaskTitle(title string) TaskOption {
	return func(t *domain.Task) { t.Title = title }
}

// WithTaskDescription sets the task description.
func WithTaskDescription(description string) TaskOption {
	return func(t *domain.Task) { t.Description = description }
}

// WithTaskDone sets the task completion flag.
func WithTaskDone(done bool) TaskOption {
	return func(t *domain.Task) { t.Done = done }
}

// MustCreateTaskForTest builds a valid task with a unique title and ID 1,
// then applies opts. It does not store the task anywhere.
func MustCreateTaskForTest(t *testing.T, opts ...TaskOption) *domain.Task {
	t.Helper()

	task, err := domain.NewTask(fmt.Sprintf("Test task %d", taskSeq.Add(1)), "", false)
	require.NoError(t, err, "Failed to create test task")
	task.ID = 1

	for _, opt := range opts {
		opt(task)
	}

	require.NoError(t, task.Validate(), "Test task options produced an invalid task")
	return task
}
