package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestNewTask(t *testing.T) {
	t.Parallel()

	task, err := NewTask("Write docs", "for the API", true)
	require.NoError(t, err)
	assert.Zero(t, task.ID, "ID is assigned by the store, not the constructor")
	assert.Equal(t, "Write docs", task.Title)
	assert.Equal(t, "for the API", task.Description)
	assert.True(t, task.Done)

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := NewTask(title, "", false)
		assert.ErrorIs(t, err, ErrTaskTitleEmpty, "title %q should be rejected", title)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		task    Task
		wantErr error
	}{
		{name: "valid", task: Task{ID: 1, Title: "ok"}},
		{name: "zero id", task: Task{Title: "ok"}, wantErr: ErrTaskIDInvalid},
		{name: "negative id", task: Task{ID: -4, Title: "ok"}, wantErr: ErrTaskIDInvalid},
		{name: "empty title", task: Task{ID: 2}, wantErr: ErrTaskTitleEmpty},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.task.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
		})
	}
}

func TestTaskPatchApply(t *testing.T) {
	t.Parallel()

	base := Task{ID: 7, Title: "X", Description: "desc", Done: false}

	t.Run("empty patch changes nothing", func(t *testing.T) {
		task := base
		patch := TaskPatch{}
		assert.True(t, patch.IsEmpty())
		patch.Apply(&task)
		assert.Equal(t, base, task)
	})

	t.Run("only present fields change", func(t *testing.T) {
		task := base
		patch := TaskPatch{Done: boolPtr(true)}
		assert.False(t, patch.IsEmpty())
		patch.Apply(&task)
		assert.Equal(t, Task{ID: 7, Title: "X", Description: "desc", Done: true}, task)
	})

	t.Run("all fields change but id", func(t *testing.T) {
		task := base
		TaskPatch{
			Title:       strPtr("Y"),
			Description: strPtr(""),
			Done:        boolPtr(true),
		}.Apply(&task)
		assert.Equal(t, Task{ID: 7, Title: "Y", Description: "", Done: true}, task)
	})
}

func TestTaskPatchValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, TaskPatch{}.Validate())
	assert.NoError(t, TaskPatch{Title: strPtr("new")}.Validate())
	assert.NoError(t, TaskPatch{Description: strPtr("")}.Validate())
	assert.ErrorIs(t, TaskPatch{Title: strPtr(" ")}.Validate(), ErrTaskTitleEmpty)
}

func TestSampleTasks(t *testing.T) {
	t.Parallel()

	tasks := SampleTasks()
	require.Len(t, tasks, 3)

	seen := make(map[int64]bool)
	for i, task := range tasks {
		assert.NoError(t, task.Validate())
		assert.Equal(t, int64(i+1), task.ID)
		assert.False(t, seen[task.ID])
		seen[task.ID] = true
	}
	assert.True(t, tasks[2].Done)

	// Callers get a fresh slice every time.
	tasks[0].Title = "mutated"
	assert.Equal(t, "Buy groceries", SampleTasks()[0].Title)
}
