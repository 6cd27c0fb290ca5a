// Package testutil provides common testing utilities and helpers.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewMockServer creates a test HTTP server with a predefined response.
// It validates the request path and, when key/token are non-empty, the auth
// query parameters Trello expects on every call.
func NewMockServer(t *testing.T, expectedPath, key, token, responseBody string, statusCode int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, expectedPath, r.URL.Path, "Request path should match expected")

		if key != "" {
			assert.Equal(t, key, r.URL.Query().Get("key"), "key query parameter should be set")
		}
		if token != "" {
			assert.Equal(t, token, r.URL.Query().Get("token"), "token query parameter should be set")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, err := w.Write([]byte(responseBody))
		require.NoError(t, err, "Failed to write response body")
	}))
}

// NewMockServerWithHandler creates a test HTTP server with a custom handler.
// Use this for scenarios that need to inspect the full request.
func NewMockServerWithHandler(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(handler)
}

// Response is one canned reply for NewMockServerSequence.
type Response struct {
	Body       string
	StatusCode int
}

// NewMockServerSequence creates a test server that returns responses in
// sequence, one per request. Useful for testing retry logic.
func NewMockServerSequence(t *testing.T, responses []Response) *httptest.Server {
	t.Helper()

	callCount := 0
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if callCount >= len(responses) {
			t.Errorf("More requests than configured responses (got %d requests, have %d responses)",
				callCount+1, len(responses))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		resp := responses[callCount]
		callCount++

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.StatusCode)
		_, err := w.Write([]byte(resp.Body))
		require.NoError(t, err, "Failed to write response body")
	}))
}
