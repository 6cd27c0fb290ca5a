package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cedric-marchal/trello/internal/middleware"
)

func TestHeaders(t *testing.T) {
	t.Parallel()

	t.Run("sets default headers", func(t *testing.T) {
		t.Parallel()

		var gotAccept, gotAgent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAccept = r.Header.Get("Accept")
			gotAgent = r.Header.Get("User-Agent")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		transport := middleware.Headers(map[string]string{
			"Accept":     "application/json",
			"User-Agent": "trello-test",
		})(http.DefaultTransport)

		req, _ := http.NewRequest(http.MethodGet, server.URL, http.NoBody)
		resp, err := transport.RoundTrip(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "application/json", gotAccept)
		assert.Equal(t, "trello-test", gotAgent)
	})

	t.Run("request headers win over defaults", func(t *testing.T) {
		t.Parallel()

		var gotContentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		transport := middleware.Headers(map[string]string{
			"Content-Type": "text/plain",
		})(http.DefaultTransport)

		req, _ := http.NewRequest(http.MethodPost, server.URL, http.NoBody)
		req.Header.Set("Content-Type", "application/json")

		resp, err := transport.RoundTrip(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "application/json", gotContentType)
	})

	t.Run("original request is not mutated", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		transport := middleware.Headers(map[string]string{
			"Accept": "application/json",
		})(http.DefaultTransport)

		req, _ := http.NewRequest(http.MethodGet, server.URL, http.NoBody)
		resp, err := transport.RoundTrip(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Empty(t, req.Header.Get("Accept"))
	})
}
