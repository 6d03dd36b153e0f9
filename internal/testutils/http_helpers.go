package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/task-service/internal/api/shared"
	"github.com/phrazzld/task-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// Automatically registers cleanup via t.Cleanup() so callers don't need to manually close the server.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// ExecuteRequest sends a request to server. A non-empty body is sent as
// JSON. Automatically registers cleanup for the response body so callers
// don't need to manually close it.
func ExecuteRequest(t *testing.T, server *httptest.Server, method, path, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err, "Failed to create request")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")

	t.Cleanup(func() {
		if err := resp.Body.Close(); err != nil {
			t.Logf("Warning: failed to close response body: %v", err)
		}
	})

	return resp
}

// ReadBody reads the whole response body.
func ReadBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	return string(body)
}

// DecodeJSONResponse checks the status code and decodes the body into v.
func DecodeJSONResponse(t *testing.T, resp *http.Response, expectedStatus int, v interface{}) {
	t.Helper()

	require.Equal(t, expectedStatus, resp.StatusCode, "Unexpected status code")
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body := ReadBody(t, resp)
	require.NoError(t, json.Unmarshal([]byte(body), v), "Failed to unmarshal response: %s", body)
}

// AssertTaskResponse checks that a response carries exactly the expected task.
func AssertTaskResponse(t *testing.T, resp *http.Response, expectedStatus int, expected domain.Task) {
	t.Helper()

	var got domain.Task
	DecodeJSONResponse(t, resp, expectedStatus, &got)
	assert.Equal(t, expected, got)
}

// AssertErrorResponse checks that a response contains an error with the expected status code and message.
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedErrorMsgPart string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status code %d but got %d", expectedStatus, resp.StatusCode)

	body := ReadBody(t, resp)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &raw), "Failed to unmarshal error response: %s", body)
	assert.Len(t, raw, 1, "Error responses carry only the error field: %s", body)

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &errResp))
	assert.Contains(t, errResp.Error, expectedErrorMsgPart,
		"Error message should contain '%s' but got '%s'", expectedErrorMsgPart, errResp.Error)
}
