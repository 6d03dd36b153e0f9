package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-service/internal/domain"
	"github.com/phrazzld/task-service/internal/platform/logger"
	"github.com/phrazzld/task-service/internal/store"
)

// TaskService provides task-related operations
type TaskService interface {
	// ListTasks returns every task in insertion order.
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// GetTask retrieves a task by its ID.
	// Returns ErrTaskNotFound if it does not exist.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// CreateTask validates and stores a new task, returning it with its ID set.
	// Returns an error wrapping ErrInvalidTask if the title is empty.
	CreateTask(ctx context.Context, title, description string, done bool) (*domain.Task, error)

	// UpdateTask applies a partial update and returns the updated task.
	// Returns ErrTaskNotFound or an error wrapping ErrInvalidTask.
	UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)

	// DeleteTask removes a task. Returns ErrTaskNotFound if it does not exist.
	DeleteTask(ctx context.Context, id int64) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewTaskService creates a new TaskService
// It returns an error if the task store is nil.
func NewTaskService(tasks store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if tasks == nil {
		return nil, fmt.Errorf("%w: task store cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_service")),
	}, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}

	log.Info("fetching all tasks", slog.Int("total", len(tasks)))
	return tasks, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Warn("task not found", slog.Int64("task_id", id))
			return nil, ErrTaskNotFound
		}
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}

	log.Info("task found", slog.Int64("task_id", id))
	return task, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	title, description string,
	done bool,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(title, description, done)
	if err != nil {
		log.Debug("rejected invalid task", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", ErrInvalidTask, err)
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTask, err)
		}
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created",
		slog.Int64("task_id", task.ID),
		slog.String("title", task.Title))
	return task, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id int64,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Existence is checked before the patch so an unknown ID always reports
	// not-found, whatever the body contained.
	existing, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Warn("task not found", slog.Int64("task_id", id))
			return nil, ErrTaskNotFound
		}
		return nil, NewTaskServiceError("update_task", "failed to retrieve task", err)
	}

	if patch.IsEmpty() {
		log.Debug("empty update, task unchanged", slog.Int64("task_id", id))
		return existing, nil
	}

	if err := patch.Validate(); err != nil {
		log.Debug("rejected invalid task update", slog.Int64("task_id", id), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", ErrInvalidTask, err)
	}

	task, err := s.tasks.Update(ctx, id, patch)
	if err != nil {
		switch {
		case store.IsNotFoundError(err):
			// Deleted between the lookup and the update.
			return nil, ErrTaskNotFound
		case errors.Is(err, store.ErrInvalidEntity):
			return nil, fmt.Errorf("%w: %w", ErrInvalidTask, err)
		default:
			return nil, NewTaskServiceError("update_task", "failed to update task", err)
		}
	}

	log.Info("task updated", slog.Int64("task_id", id))
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.tasks.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			log.Warn("task not found", slog.Int64("task_id", id))
			return ErrTaskNotFound
		}
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	log.Info("task deleted", slog.Int64("task_id", id))
	return nil
}
