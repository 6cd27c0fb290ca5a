// Package transport executes single logical Trello API calls: it builds the
// request URL, encodes form or JSON payloads, classifies the response, and
// transparently retries throttled calls with a bounded jittered backoff.
//
// The package knows nothing about Trello's domain entities; it moves bytes.
// Callers hand it a fully assembled payload (auth included) and get back the
// raw JSON document or a typed error.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/cedric-marchal/trello/internal/backoff"
	"github.com/cedric-marchal/trello/internal/httpclient"
	"github.com/cedric-marchal/trello/observability"
)

const (
	// DefaultBaseURL is the Trello API production origin.
	DefaultBaseURL = "https://api.trello.com"

	// DefaultMaxRetries bounds how many times a throttled call is reissued
	// before giving up with a RateLimitError. The API contract itself would
	// allow retrying forever; a ceiling keeps sustained throttling from
	// turning into an unbounded loop.
	DefaultMaxRetries = 3

	// DefaultMinRetryDelay and DefaultMaxRetryDelay bound the jittered
	// backoff window for throttled calls.
	DefaultMinRetryDelay = 500 * time.Millisecond
	DefaultMaxRetryDelay = 7000 * time.Millisecond
)

// Payload carries everything a call sends besides its verb and path.
// Query is appended to the URL in both encoding modes. Data is serialized
// as a JSON body for JSON-mode methods and ignored otherwise. Headers are
// applied after defaults, so they can override Content-Type.
type Payload struct {
	Query   *Arguments
	Headers map[string]string
	Data    any
}

// Config configures a Transport.
type Config struct {
	// BaseURL overrides the API origin, primarily for tests.
	BaseURL string

	// Client is the middleware-chained HTTP client to issue requests on.
	Client *httpclient.Client

	// MaxRetries is the number of times a 429 is retried before failing.
	MaxRetries int

	// Backoff is the jitter window for throttle retries.
	Backoff backoff.Window

	Logger  observability.Logger
	Metrics observability.MetricsRecorder
}

// Transport executes API calls. It holds no per-call state and is safe for
// concurrent use.
type Transport struct {
	baseURL    string
	client     *httpclient.Client
	maxRetries int
	window     backoff.Window
	logger     observability.Logger
	metrics    observability.MetricsRecorder
}

// New creates a Transport, filling zero-value config fields with defaults.
func New(cfg Config) *Transport {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Client == nil {
		cfg.Client = httpclient.New()
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.Backoff.Min == 0 && cfg.Backoff.Max == 0 {
		cfg.Backoff = backoff.Window{Min: DefaultMinRetryDelay, Max: DefaultMaxRetryDelay}
	}
	if cfg.Logger == nil {
		cfg.Logger = observability.NoopLogger()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = observability.NoopMetricsRecorder()
	}

	return &Transport{
		baseURL:    cfg.BaseURL,
		client:     cfg.Client,
		maxRetries: cfg.MaxRetries,
		window:     cfg.Backoff,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
	}
}

// BaseURL returns the configured API origin.
func (t *Transport) BaseURL() string {
	return t.baseURL
}

// Execute runs one logical API call to completion and returns the response
// body as raw JSON.
//
// Throttled responses (429) are retried with a uniformly jittered delay
// until the retry ceiling is reached, then fail with *RateLimitError. Any
// other non-2xx response fails immediately with *APIError carrying the raw
// body text and response metadata. A 2xx body that is not valid JSON fails
// with *DecodeError. Transport-level failures are wrapped so the underlying
// *url.Error stays reachable via errors.As.
//
// The backoff sleep honors ctx cancellation; concurrent calls never block
// each other.
func (t *Transport) Execute(ctx context.Context, method Method, path string, payload Payload) (json.RawMessage, error) {
	target := t.baseURL + path
	if payload.Query.Len() > 0 {
		target += "?" + payload.Query.Encode()
	}

	var body []byte
	if method.JSONBody() && payload.Data != nil {
		var err error
		body, err = json.Marshal(payload.Data)
		if err != nil {
			return nil, errors.Wrap(err, "marshaling request body")
		}
	}

	for attempt := 1; ; attempt++ {
		req, err := t.newRequest(ctx, method, target, payload.Headers, body)
		if err != nil {
			return nil, err
		}

		resp, err := t.client.Do(req)
		if err != nil {
			return nil, errors.Wrapf(err, "%s %s", method.HTTPMethod(), path)
		}

		if !backoff.Throttled(resp.StatusCode) {
			return t.classify(resp, target)
		}

		drain(resp)

		if attempt > t.maxRetries {
			t.metrics.RecordError("execute", "RateLimitError")

			return nil, &RateLimitError{
				Attempts: attempt,
				Status:   resp.StatusCode,
				Header:   resp.Header,
				URL:      target,
			}
		}

		delay := t.window.Delay()

		t.logger.Warn("rate limited, retrying",
			observability.Field{Key: "attempt", Value: attempt},
			observability.Field{Key: "max_retries", Value: t.maxRetries},
			observability.Field{Key: "delay", Value: delay},
			observability.Field{Key: "path", Value: path},
		)

		t.metrics.RecordRetry(attempt, path)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "context canceled during retry wait")
		}
	}
}

func (t *Transport) newRequest(ctx context.Context, method Method, target string, headers map[string]string, body []byte) (*http.Request, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method.HTTPMethod(), target, reader)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for name, value := range headers {
		req.Header.Set(name, value)
	}

	return req, nil
}

// classify turns a non-throttled response into the call's result: raw JSON
// on success, *APIError on any other status, *DecodeError on a success body
// that is not JSON.
func (t *Transport) classify(resp *http.Response, target string) (json.RawMessage, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		t.metrics.RecordError("execute", "APIError")

		return nil, &APIError{
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Header:     resp.Header,
			URL:        target,
			Body:       string(body),
		}
	}

	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		t.metrics.RecordError("execute", "DecodeError")

		return nil, &DecodeError{Err: err, Body: snippet(body)}
	}

	return raw, nil
}

// drain discards a response body so the connection can be reused before a
// retry.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	resp.Body.Close()
}

const snippetLimit = 256

func snippet(body []byte) string {
	if len(body) > snippetLimit {
		return string(body[:snippetLimit])
	}
	return string(body)
}
