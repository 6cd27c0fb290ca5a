package middleware

import (
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"

	"github.com/cedric-marchal/trello/observability"
)

// RateLimitConfig configures the rate limit middleware.
type RateLimitConfig struct {
	Limiter *rate.Limiter
	Logger  observability.Logger
	Metrics observability.MetricsRecorder
}

// NewLimiter creates a token-bucket limiter from a per-minute request budget.
// Tokens replenish continuously at requestsPerMinute/60 per second with a
// burst capacity of one second's worth of requests.
func NewLimiter(requestsPerMinute int) *rate.Limiter {
	burst := requestsPerMinute / 60
	if burst < 1 {
		burst = 1
	}

	return rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), burst)
}

// RateLimit returns a middleware that paces outgoing requests through a
// client-side token bucket. Trello enforces a per-token request window
// server-side; pacing locally keeps well-behaved callers from ever seeing
// the 429 path under normal load.
func RateLimit(cfg RateLimitConfig) func(http.RoundTripper) http.RoundTripper {
	if cfg.Logger == nil {
		cfg.Logger = observability.NoopLogger()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return &rateLimitTransport{
			next:    next,
			limiter: cfg.Limiter,
			logger:  cfg.Logger,
			metrics: cfg.Metrics,
		}
	}
}

type rateLimitTransport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
	logger  observability.Logger
	metrics observability.MetricsRecorder
}

func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.limiter == nil {
		// No rate limiting
		return t.next.RoundTrip(req)
	}

	ctx := req.Context()

	reservation := t.limiter.Reserve()
	if !reservation.OK() {
		return nil, errors.New("rate limit reservation failed")
	}

	delay := reservation.Delay()
	if delay > 0 {
		t.logger.Debug("rate limit delay",
			observability.Field{Key: "delay", Value: delay},
			observability.Field{Key: "path", Value: req.URL.Path},
		)

		t.metrics.RecordRateLimit(req.URL.Path, delay)

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			reservation.Cancel()
			return nil, errors.Wrap(ctx.Err(), "context canceled during rate limit wait")
		}
	}

	return t.next.RoundTrip(req)
}
