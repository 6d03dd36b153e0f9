// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrTaskTitleEmpty is returned when a task has no title.
	ErrTaskTitleEmpty = fmt.Errorf("%w: title is required", ErrValidation)

	// ErrTaskIDInvalid is returned when a task ID is not a positive integer.
	ErrTaskIDInvalid = fmt.Errorf("%w: task ID must be positive", ErrValidation)
)
