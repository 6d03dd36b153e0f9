package api

import (
	"context"

	"github.com/phrazzld/task-service/internal/domain"
	"github.com/phrazzld/task-service/internal/service"
)

// MockTaskService is a func-field implementation of service.TaskService.
type MockTaskService struct {
	ListTasksFn  func(ctx context.Context) ([]domain.Task, error)
	GetTaskFn    func(ctx context.Context, id int64) (*domain.Task, error)
	CreateTaskFn func(ctx context.Context, title, description string, done bool) (*domain.Task, error)
	UpdateTaskFn func(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, id int64) error
}

var _ service.TaskService = (*MockTaskService)(nil)

func (m *MockTaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx)
	}
	return []domain.Task{}, nil
}

func (m *MockTaskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return nil, service.ErrTaskNotFound
}

func (m *MockTaskService) CreateTask(
	ctx context.Context,
	title, description string,
	done bool,
) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, title, description, done)
	}
	return &domain.Task{ID: 1, Title: title, Description: description, Done: done}, nil
}

func (m *MockTaskService) UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, patch)
	}
	return nil, service.ErrTaskNotFound
}

func (m *MockTaskService) DeleteTask(ctx context.Context, id int64) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return nil
}
