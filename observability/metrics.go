package observability

import "time"

// MetricsRecorder is the interface for recording client metrics.
// Implementations can use any metrics library (Prometheus, StatsD, etc.).
type MetricsRecorder interface {
	// RecordHTTPRequest records a completed HTTP request with method,
	// normalized path, status code, and duration.
	RecordHTTPRequest(method, path string, statusCode int, duration time.Duration)

	// RecordRetry records a rate-limit retry attempt for an endpoint.
	RecordRetry(attempt int, endpoint string)

	// RecordRateLimit records a client-side rate limit wait event.
	RecordRateLimit(endpoint string, wait time.Duration)

	// RecordError records an error occurrence by operation and error type.
	RecordError(operation, errorType string)
}

// noopMetricsRecorder is a no-operation metrics recorder that does nothing.
type noopMetricsRecorder struct{}

// NoopMetricsRecorder returns a metrics recorder that does nothing.
// This is the default recorder used when none is provided.
func NoopMetricsRecorder() MetricsRecorder {
	return &noopMetricsRecorder{}
}

func (m *noopMetricsRecorder) RecordHTTPRequest(string, string, int, time.Duration) {}
func (m *noopMetricsRecorder) RecordRetry(int, string)                              {}
func (m *noopMetricsRecorder) RecordRateLimit(string, time.Duration)                {}
func (m *noopMetricsRecorder) RecordError(string, string)                           {}
