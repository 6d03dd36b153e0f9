package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/task-service/internal/platform/logger"
	"github.com/phrazzld/task-service/internal/service"
)

// taskIDParam is the chi URL parameter holding the task ID.
const taskIDParam = "id"

// getPathTaskID extracts the task ID from the URL path parameters.
//
// A segment that is not a positive integer cannot name a stored task, so it
// is reported as service.ErrTaskNotFound and answered with 404.
func getPathTaskID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, taskIDParam)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: malformed id %q", service.ErrTaskNotFound, raw)
	}

	return id, nil
}

// handlePathTaskID extracts the task ID and writes the error response if it
// is malformed.
//
// Returns:
//   - (id, true): the parsed task ID
//   - (0, false): the ID was invalid and a 404 has been written
func handlePathTaskID(w http.ResponseWriter, r *http.Request, log *slog.Logger) (int64, bool) {
	if log == nil {
		log = logger.FromContextOrDefault(r.Context(), slog.Default())
	}

	id, err := getPathTaskID(r)
	if err != nil {
		log.Warn("invalid task id", slog.String("value", chi.URLParam(r, taskIDParam)))
		HandleAPIError(w, r, err, "")
		return 0, false
	}

	return id, true
}
