package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestRecorder receives one observation per completed request.
// *metrics.Metrics satisfies it.
type RequestRecorder interface {
	RequestStarted() func()
	ObserveRequest(method, path string, status int, elapsed time.Duration)
}

// Metrics records request count, latency and in-flight requests.
//
// The path label is the matched chi route pattern, read after the handler
// has run, so /tasks/1 and /tasks/2 share the label /tasks/{id}. Requests
// that match no route are passed through with an empty path.
func Metrics(rec RequestRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := rec.RequestStarted()
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				done()
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				rec.ObserveRequest(r.Method, routePattern(r), status, time.Since(start))
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}
