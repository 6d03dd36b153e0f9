package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/task-service/internal/config"
	"github.com/phrazzld/task-service/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	l, buf := logger.GetTestLogger(t)
	h := NewHealthHandler(config.ServiceConfig{Name: "task-service", Version: "1.0.0"}, "/metrics", l)

	tests := []struct {
		name         string
		handler      http.HandlerFunc
		target       string
		expectedBody string
	}{
		{
			name:         "health",
			handler:      h.Health,
			target:       "/health",
			expectedBody: `{"status":"healthy","service":"task-service"}`,
		},
		{
			name:         "ready",
			handler:      h.Ready,
			target:       "/ready",
			expectedBody: `{"status":"ready"}`,
		},
		{
			name:    "index",
			handler: h.Index,
			target:  "/",
			expectedBody: `{"service":"task-service","version":"1.0.0","endpoints":` +
				`{"health":"/health","ready":"/ready","tasks":"/tasks","metrics":"/metrics"}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tc.handler(rr, httptest.NewRequest(http.MethodGet, tc.target, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}

	logger.AssertLogContains(t, buf, "health check called")
}

func TestIndexWithoutMetrics(t *testing.T) {
	h := NewHealthHandler(config.ServiceConfig{Name: "task-service", Version: "2.0.0"}, "", nil)

	rr := httptest.NewRecorder()
	h.Index(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.JSONEq(t,
		`{"service":"task-service","version":"2.0.0","endpoints":{"health":"/health","ready":"/ready","tasks":"/tasks"}}`,
		rr.Body.String())
}

func TestFallbackHandlers(t *testing.T) {
	rr := httptest.NewRecorder()
	NotFound(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	MethodNotAllowed(rr, httptest.NewRequest(http.MethodPatch, "/tasks", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rr.Body.String())
}
