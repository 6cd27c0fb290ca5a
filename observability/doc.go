// Package observability provides interfaces for logging and metrics
// collection in the trello client library.
//
// This package defines standard interfaces that allow users to integrate
// their own logging and metrics implementations with the Trello API client.
//
// # Logger Interface
//
// The Logger interface supports structured logging with key-value pairs:
//
//	logger := myCustomLogger{} // implements observability.Logger
//	client, err := trello.NewWithConfig(&trello.ClientConfig{
//		Key:    apiKey,
//		Token:  apiToken,
//		Logger: logger,
//	})
//
// Supported log levels:
//   - Debug: Detailed diagnostic information (request start/completion)
//   - Info: General informational messages
//   - Warn: Warning messages (retries, error responses)
//   - Error: Error messages for failures
//
// # MetricsRecorder Interface
//
// The MetricsRecorder interface tracks API client metrics:
//
//	metrics := myMetricsRecorder{} // implements observability.MetricsRecorder
//	client, err := trello.NewWithConfig(&trello.ClientConfig{
//		Key:     apiKey,
//		Token:   apiToken,
//		Metrics: metrics,
//	})
//
// Tracked metrics include:
//   - HTTP request count, status codes, and duration
//   - Rate-limit retry attempts
//   - Client-side rate limiting events and wait times
//   - Error occurrences by type
//
// # Default Behavior
//
// If no logger or metrics recorder is provided, the client uses no-op
// implementations that discard all events. This ensures zero overhead
// when observability is not needed, and that the client never logs or
// records anything on its own behalf.
//
// # Example
//
// See examples/observability/main.go for a complete working example showing
// how to integrate custom logging (using zap) and metrics collection.
package observability
