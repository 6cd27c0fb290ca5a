package trello

import "github.com/cedric-marchal/trello/internal/transport"

// The transport layer produces all terminal errors; the aliases below make
// them part of the public surface so callers can branch with errors.As.

// APIError is a non-2xx, non-429 response from the Trello API. Error()
// returns the raw server body; Status, Header, and URL support
// status-code-driven handling.
type APIError = transport.APIError

// RateLimitError is returned when sustained throttling exhausted the retry
// ceiling. It carries the last 429 response's metadata.
type RateLimitError = transport.RateLimitError

// DecodeError is returned when a success response does not carry valid JSON.
type DecodeError = transport.DecodeError

// ValidationError reports bad caller input. It is returned synchronously,
// before any network activity.
type ValidationError = transport.ValidationError
