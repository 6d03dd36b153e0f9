package service

import (
	"context"

	"github.com/phrazzld/task-service/internal/domain"
)

// mockTaskStore is a func-field implementation of store.TaskStore.
// Unset functions return zero values.
type mockTaskStore struct {
	ListFn    func(ctx context.Context) ([]domain.Task, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Task, error)
	CreateFn  func(ctx context.Context, task *domain.Task) error
	UpdateFn  func(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	DeleteFn  func(ctx context.Context, id int64) error
	CountFn   func(ctx context.Context) (int, error)
}

func (m *mockTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []domain.Task{}, nil
}

func (m *mockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return nil
}

func (m *mockTaskStore) Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}
	return nil, nil
}

func (m *mockTaskStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *mockTaskStore) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}
