package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/task-service/internal/domain"
	"github.com/phrazzld/task-service/internal/store"
)

// TaskStore implements the store.TaskStore interface on top of an ordered
// slice. A single RWMutex serializes writers, so concurrent updates to the
// same task are applied one after the other.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  []domain.Task
	logger *slog.Logger
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an in-memory task store holding copies of seed.
// Seed tasks must be valid and have unique IDs.
// If logger is nil, a default logger will be used.
func NewTaskStore(logger *slog.Logger, seed ...domain.Task) (*TaskStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &TaskStore{
		tasks:  make([]domain.Task, 0, len(seed)),
		logger: logger.With(slog.String("component", "task_store")),
	}

	seen := make(map[int64]struct{}, len(seed))
	for _, t := range seed {
		if err := t.Validate(); err != nil {
			return nil, store.NewStoreError("task", "seed", "invalid seed task", fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
		}
		if _, dup := seen[t.ID]; dup {
			return nil, store.NewStoreError("task", "seed", fmt.Sprintf("duplicate task ID %d", t.ID), store.ErrInvalidEntity)
		}
		seen[t.ID] = struct{}{}
		s.tasks = append(s.tasks, t)
	}

	return s, nil
}

// List implements store.TaskStore.List
func (s *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, store.ErrTaskNotFound
	}
	t := s.tasks[i]
	return &t, nil
}

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if task == nil {
		return store.NewStoreError("task", "create", "task is nil", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	candidate := *task
	candidate.ID = s.nextID()
	if err := candidate.Validate(); err != nil {
		return store.NewStoreError("task", "create", "validation failed", fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	s.tasks = append(s.tasks, candidate)
	task.ID = candidate.ID

	s.logger.DebugContext(ctx, "task stored", slog.Int64("task_id", candidate.ID))
	return nil
}

// Update implements store.TaskStore.Update
func (s *TaskStore) Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, store.ErrTaskNotFound
	}

	updated := s.tasks[i]
	patch.Apply(&updated)
	if err := updated.Validate(); err != nil {
		return nil, store.NewStoreError("task", "update", "validation failed", fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}
	s.tasks[i] = updated

	s.logger.DebugContext(ctx, "task replaced", slog.Int64("task_id", id))
	return &updated, nil
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return store.ErrTaskNotFound
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)

	s.logger.DebugContext(ctx, "task removed", slog.Int64("task_id", id))
	return nil
}

// Count implements store.TaskStore.Count
func (s *TaskStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks), nil
}

// indexOf returns the slice position of id, or -1. Callers hold s.mu.
func (s *TaskStore) indexOf(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID is one more than the largest stored ID. Callers hold s.mu.
func (s *TaskStore) nextID() int64 {
	var maxID int64
	for i := range s.tasks {
		if s.tasks[i].ID > maxID {
			maxID = s.tasks[i].ID
		}
	}
	return maxID + 1
}
