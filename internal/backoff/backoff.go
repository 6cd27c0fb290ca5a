// Package backoff provides delay computation for retrying throttled requests.
package backoff

import (
	"math/rand"
	"net/http"
	"time"
)

// Window describes the range a retry delay is drawn from.
type Window struct {
	Min time.Duration
	Max time.Duration
}

// Delay returns a random duration uniformly distributed in [Min, Max).
// Trello signals throttling without a usable Retry-After value, so the
// client waits a jittered amount inside a fixed window instead of parsing
// response headers. A degenerate window (Max <= Min) returns Min.
func (w Window) Delay() time.Duration {
	if w.Max <= w.Min {
		return w.Min
	}

	return w.Min + time.Duration(rand.Int63n(int64(w.Max-w.Min)))
}

// Throttled returns true if the HTTP status code is a rate-limit signal.
// Only 429 (Too Many Requests) triggers a retry; server errors and client
// errors are surfaced to the caller unchanged.
func Throttled(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests
}
