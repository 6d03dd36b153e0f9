package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/task-service/internal/api/shared"
	"github.com/phrazzld/task-service/internal/domain"
	"github.com/phrazzld/task-service/internal/platform/logger"
	"github.com/phrazzld/task-service/internal/service"
	"github.com/phrazzld/task-service/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"service not found", service.ErrTaskNotFound, http.StatusNotFound},
		{"store not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", service.ErrTaskNotFound), http.StatusNotFound},
		{"invalid task", service.ErrInvalidTask, http.StatusBadRequest},
		{"domain validation", domain.ErrTaskTitleEmpty, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"empty body", shared.ErrEmptyBody, http.StatusBadRequest},
		{
			"service error wrapping not found",
			service.NewTaskServiceError("get_task", "failed", store.ErrTaskNotFound),
			http.StatusNotFound,
		},
		{"unknown", errors.New("something else"), http.StatusInternalServerError},
		{"context canceled", context.Canceled, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"not found", service.ErrTaskNotFound, "Task not found"},
		{"store not found", store.ErrTaskNotFound, "Task not found"},
		{"title empty", fmt.Errorf("%w: %w", service.ErrInvalidTask, domain.ErrTaskTitleEmpty), "Title is required"},
		{"invalid id", domain.ErrTaskIDInvalid, "Invalid task data"},
		{"invalid entity", store.ErrInvalidEntity, "Invalid task data"},
		{"empty body", shared.ErrEmptyBody, "Invalid request body"},
		{
			"internal details are hidden",
			errors.New("dial tcp 10.0.0.7:5432: password=hunter22 rejected"),
			"An unexpected error occurred",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		defaultMsg      string
		expectedStatus  int
		expectedMessage string
		expectedLevel   string
	}{
		{
			name:            "not found ignores default message",
			err:             service.ErrTaskNotFound,
			defaultMsg:      "Custom default message",
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Task not found",
			expectedLevel:   "DEBUG",
		},
		{
			name:            "validation error is elevated",
			err:             domain.ErrTaskTitleEmpty,
			defaultMsg:      "Custom default message",
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Title is required",
			expectedLevel:   "WARN",
		},
		{
			name:            "unexpected error uses default message",
			err:             errors.New("store connection error"),
			defaultMsg:      "Friendly server error message",
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Friendly server error message",
			expectedLevel:   "ERROR",
		},
		{
			name:            "unexpected error without default message",
			err:             errors.New("store connection error"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "An unexpected error occurred",
			expectedLevel:   "ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, buf := logger.GetTestLogger(t)
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req = req.WithContext(logger.WithLogger(req.Context(), l))
			rr := httptest.NewRecorder()

			HandleAPIError(rr, req, tc.err, tc.defaultMsg)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			var response map[string]interface{}
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
			assert.Equal(t, map[string]interface{}{"error": tc.expectedMessage}, response)

			logger.AssertLogField(t, buf, "level", tc.expectedLevel)
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Run("validator errors", func(t *testing.T) {
		empty := ""
		err := shared.ValidateRequest(&UpdateTaskRequest{Title: &empty})
		require.Error(t, err)
		assert.Equal(t, "Invalid title: too short", SanitizeValidationError(err))
	})

	t.Run("required tag", func(t *testing.T) {
		err := shared.ValidateRequest(&CreateTaskRequest{})
		require.Error(t, err)
		assert.Equal(t, "Invalid title: required field", SanitizeValidationError(err))
	})

	t.Run("message string", func(t *testing.T) {
		err := errors.New("Key: 'UpdateTaskRequest.Title' Error:Field validation for 'Title' failed on the 'max' tag")
		assert.Equal(t, "Invalid title: too long", SanitizeValidationError(err))
	})

	t.Run("other errors", func(t *testing.T) {
		assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("nope")))
	})
}
