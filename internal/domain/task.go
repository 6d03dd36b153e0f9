package domain

import "strings"

// Task is the unit record managed by the service.
// ID is assigned by the store and never changes afterwards.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// NewTask creates an unsaved Task. The ID stays zero until a store assigns one.
// Returns an error if validation fails.
func NewTask(title, description string, done bool) (*Task, error) {
	task := &Task{
		Title:       title,
		Description: description,
		Done:        done,
	}

	if err := task.validateContent(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks that a stored Task has valid data.
func (t *Task) Validate() error {
	if t.ID <= 0 {
		return ErrTaskIDInvalid
	}
	return t.validateContent()
}

func (t *Task) validateContent() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrTaskTitleEmpty
	}
	return nil
}

// TaskPatch is a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Done        *bool
}

// Validate reports whether applying the patch could produce an invalid Task.
func (p TaskPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrTaskTitleEmpty
	}
	return nil
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Done == nil
}

// Apply overwrites the fields of t that are set in the patch.
// The ID is never modified.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Done != nil {
		t.Done = *p.Done
	}
}

// SampleTasks returns the records a fresh service starts with.
func SampleTasks() []Task {
	return []Task{
		{ID: 1, Title: "Buy groceries", Description: "Milk, eggs, bread", Done: false},
		{ID: 2, Title: "Complete report", Description: "Q4 financial summary", Done: false},
		{ID: 3, Title: "Team meeting", Description: "Project sync at 3 PM", Done: true},
	}
}
