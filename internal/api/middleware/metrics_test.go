package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	path   string
	status int
}

type fakeRecorder struct {
	mu           sync.Mutex
	inFlight     int
	maxInFlight  int
	observations []observation
}

func (f *fakeRecorder) RequestStarted() func() {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}
}

func (f *fakeRecorder) ObserveRequest(method, path string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.observations = append(f.observations, observation{method, path, status})
}

func TestMetricsMiddleware(t *testing.T) {
	rec := &fakeRecorder{}

	r := chi.NewRouter()
	r.Use(Metrics(rec))
	r.Get("/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Post("/tasks", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	})

	tests := []struct {
		method   string
		target   string
		expected observation
	}{
		{http.MethodGet, "/tasks/42", observation{http.MethodGet, "/tasks/{id}", http.StatusNotFound}},
		{http.MethodPost, "/tasks", observation{http.MethodPost, "/tasks", http.StatusCreated}},
		{http.MethodGet, "/health", observation{http.MethodGet, "/health", http.StatusOK}},
		{http.MethodGet, "/nope", observation{http.MethodGet, "", http.StatusNotFound}},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rec.observations = nil
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.target, nil))

			require.Len(t, rec.observations, 1)
			assert.Equal(t, tc.expected, rec.observations[0])
			assert.Equal(t, 0, rec.inFlight)
		})
	}

	assert.Equal(t, 1, rec.maxInFlight)
}
