package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/cedric-marchal/trello/internal/middleware"
)

func TestRateLimit(t *testing.T) {
	t.Parallel()

	t.Run("paces requests through limiter", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		// Allow 2 requests per second
		limiter := rate.NewLimiter(2, 2)

		transport := middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: limiter,
		})(http.DefaultTransport)

		// First 2 requests should be fast
		for i := 0; i < 2; i++ {
			req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, http.NoBody)
			start := time.Now()
			resp, err := transport.RoundTrip(req)
			duration := time.Since(start)

			require.NoError(t, err)
			resp.Body.Close()

			assert.Less(t, duration, 100*time.Millisecond, "request %d should complete quickly", i+1)
		}

		// Third request has to wait for a token
		req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, http.NoBody)
		start := time.Now()
		resp, err := transport.RoundTrip(req)
		duration := time.Since(start)

		require.NoError(t, err)
		resp.Body.Close()

		assert.GreaterOrEqual(t, duration, 100*time.Millisecond, "third request should be rate limited")
	})

	t.Run("nil limiter disables pacing", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		transport := middleware.RateLimit(middleware.RateLimitConfig{})(http.DefaultTransport)

		for i := 0; i < 5; i++ {
			req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, http.NoBody)
			resp, err := transport.RoundTrip(req)
			require.NoError(t, err)
			resp.Body.Close()
		}
	})

	t.Run("context cancellation during wait", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		// Drain the bucket so the next request must wait a long time
		limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
		limiter.Allow()

		transport := middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: limiter,
		})(http.DefaultTransport)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, http.NoBody)
		_, err := transport.RoundTrip(req)

		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestNewLimiter(t *testing.T) {
	t.Parallel()

	t.Run("per-minute budget", func(t *testing.T) {
		t.Parallel()

		limiter := middleware.NewLimiter(600)

		assert.InDelta(t, 10.0, float64(limiter.Limit()), 0.001)
		assert.Equal(t, 10, limiter.Burst())
	})

	t.Run("tiny budget keeps burst of one", func(t *testing.T) {
		t.Parallel()

		limiter := middleware.NewLimiter(30)

		assert.Equal(t, 1, limiter.Burst())
	})
}
