package transport

import (
	"fmt"
	"net/http"
)

// ValidationError reports bad caller input (unsupported method name, wrong
// options type, unknown field enum). It is returned before any I/O happens.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// APIError is a non-2xx, non-429 response from the API. Error() returns the
// raw server body so callers see Trello's own message; the structured fields
// support status-driven branching.
type APIError struct {
	Status     int
	StatusText string
	Header     http.Header
	URL        string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("request failed with status %d %s", e.Status, e.StatusText)
}

// RateLimitError is returned when the API kept answering 429 until the retry
// ceiling was exhausted. It carries the last throttled response.
type RateLimitError struct {
	Attempts int
	Status   int
	Header   http.Header
	URL      string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited after %d attempts", e.Attempts)
}

// DecodeError is returned when a success response does not carry valid JSON.
type DecodeError struct {
	Err  error
	Body string
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decoding response body: %v", e.Err)
	}
	return "decoding response body: not valid JSON"
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
