package middleware

import (
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/cedric-marchal/trello/observability"
)

// Observability returns a middleware that logs and records metrics for HTTP requests.
func Observability(logger observability.Logger, metrics observability.MetricsRecorder) func(http.RoundTripper) http.RoundTripper {
	if logger == nil {
		logger = observability.NoopLogger()
	}
	if metrics == nil {
		metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return &observabilityTransport{
			next:    next,
			logger:  logger,
			metrics: metrics,
		}
	}
}

type observabilityTransport struct {
	next    http.RoundTripper
	logger  observability.Logger
	metrics observability.MetricsRecorder
}

func (t *observabilityTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	t.logger.Debug("http request started",
		observability.Field{Key: "method", Value: req.Method},
		observability.Field{Key: "path", Value: req.URL.Path},
	)

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		t.logger.Error("http request failed",
			observability.Field{Key: "method", Value: req.Method},
			observability.Field{Key: "path", Value: req.URL.Path},
			observability.Field{Key: "duration", Value: duration},
			observability.Field{Key: "error", Value: err.Error()},
		)

		t.metrics.RecordError("http_request", "NetworkError")

		//nolint:wrapcheck // Observability middleware logs the error but passes it through unchanged
		return nil, err
	}

	fields := []observability.Field{
		{Key: "method", Value: req.Method},
		{Key: "path", Value: req.URL.Path},
		{Key: "status", Value: resp.StatusCode},
		{Key: "duration", Value: duration},
	}

	if resp.StatusCode >= http.StatusBadRequest {
		t.logger.Warn("http request completed with error", fields...)
	} else {
		t.logger.Debug("http request completed", fields...)
	}

	// Record metrics with normalized path to avoid unbounded cardinality
	t.metrics.RecordHTTPRequest(req.Method, NormalizePath(req.URL.Path), resp.StatusCode, duration)

	return resp, nil
}

// idPattern matches the dynamic segments Trello embeds in paths: 24-hex
// ObjectIDs (boards, cards, lists, members, actions, ...) and long numeric
// IDs. Short links are deliberately not matched; 8-character alphanumeric
// patterns collide with fixed segments like "webhooks".
var idPattern = regexp.MustCompile(`[0-9a-fA-F]{24}|/\d{5,}(?:/|$)`)

// normalizedPathCache caches normalized paths so repeated requests to the
// same endpoint skip the regex entirely.
var normalizedPathCache sync.Map

// NormalizePath replaces dynamic path segments with ":id" placeholders so
// metrics keyed by path keep bounded cardinality.
//
// Examples:
//   - /1/boards/5abbe4b7ddc1b351ef961414 → /1/boards/:id
//   - /1/cards/5abbe4b7ddc1b351ef961414/actions → /1/cards/:id/actions
func NormalizePath(path string) string {
	if cached, ok := normalizedPathCache.Load(path); ok {
		//nolint:forcetypeassert // Cache only stores strings
		return cached.(string)
	}

	normalized := idPattern.ReplaceAllStringFunc(path, func(match string) string {
		// Numeric IDs keep their surrounding slashes
		if match[0] == '/' {
			if match[len(match)-1] == '/' {
				return "/:id/"
			}
			return "/:id"
		}
		return ":id"
	})

	normalizedPathCache.Store(path, normalized)

	return normalized
}
