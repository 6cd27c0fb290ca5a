package trello

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/cedric-marchal/trello/internal/backoff"
	"github.com/cedric-marchal/trello/internal/httpclient"
	"github.com/cedric-marchal/trello/internal/middleware"
	"github.com/cedric-marchal/trello/internal/transport"
	"github.com/cedric-marchal/trello/observability"
)

const (
	// DefaultBaseURL is the Trello API production origin.
	DefaultBaseURL = transport.DefaultBaseURL

	// DefaultRateLimit is the default client-side request budget per minute.
	// Trello enforces roughly 100 requests per 10 seconds per token; pacing
	// at 600/minute keeps well-behaved callers under that window.
	DefaultRateLimit = 600

	// DefaultMaxRetries is the number of times a throttled (429) call is
	// reissued before failing with a RateLimitError.
	DefaultMaxRetries = transport.DefaultMaxRetries

	// DefaultMinRetryDelay and DefaultMaxRetryDelay bound the jittered
	// backoff window applied between throttle retries.
	DefaultMinRetryDelay = transport.DefaultMinRetryDelay
	DefaultMaxRetryDelay = transport.DefaultMaxRetryDelay

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = httpclient.DefaultTimeout
)

const userAgent = "go-trello (github.com/cedric-marchal/trello)"

// Client is a Trello API client. The credential pair is fixed at
// construction and injected into every call's query string; the client is
// safe for concurrent use.
type Client struct {
	key       string
	token     string
	transport *transport.Transport
}

// ClientConfig holds configuration for the Trello API client.
type ClientConfig struct {
	// Key is the Trello API key.
	Key string

	// Token is the Trello API token authorizing the key for a member.
	Token string

	// BaseURL overrides the API origin (defaults to https://api.trello.com),
	// primarily for tests.
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	HTTPClient *http.Client

	// RateLimitPerMinute sets the client-side pacing budget (defaults to
	// 600). A negative value disables client-side pacing entirely.
	RateLimitPerMinute int

	// MaxRetries sets how many times a 429 response is retried before the
	// call fails with a RateLimitError.
	MaxRetries int

	// MinRetryDelay and MaxRetryDelay bound the jittered backoff window for
	// throttle retries.
	MinRetryDelay time.Duration
	MaxRetryDelay time.Duration

	// Timeout sets the HTTP client timeout. Ignored when HTTPClient is
	// provided.
	Timeout time.Duration

	// Logger receives structured request/retry events. Defaults to a noop.
	Logger observability.Logger

	// Metrics receives request/retry/rate-limit metrics. Defaults to a noop.
	Metrics observability.MetricsRecorder
}

// New creates a Trello API client with default settings.
//
// The client automatically paces requests client-side (600 requests/minute)
// and retries throttled calls with a jittered backoff before giving up.
//
// Example:
//
//	client, err := trello.New("your-api-key", "your-api-token")
func New(key, token string) (*Client, error) {
	return NewWithConfig(&ClientConfig{
		Key:   key,
		Token: token,
	})
}

// NewWithConfig creates a Trello API client with custom configuration.
// Use this when you need to tune rate limits, retry behavior, or plug in
// observability.
//
// Example:
//
//	client, err := trello.NewWithConfig(&trello.ClientConfig{
//	    Key:        "your-api-key",
//	    Token:      "your-api-token",
//	    MaxRetries: 5,
//	})
func NewWithConfig(cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.Key == "" {
		return nil, errors.New("API key is required")
	}
	if cfg.Token == "" {
		return nil, errors.New("API token is required")
	}

	// Set defaults
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.RateLimitPerMinute == 0 {
		cfg.RateLimitPerMinute = DefaultRateLimit
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.MinRetryDelay == 0 {
		cfg.MinRetryDelay = DefaultMinRetryDelay
	}
	if cfg.MaxRetryDelay == 0 {
		cfg.MaxRetryDelay = DefaultMaxRetryDelay
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return newClient(cfg)
}

func newClient(cfg *ClientConfig) (*Client, error) {
	rateLimitCfg := middleware.RateLimitConfig{
		Logger:  cfg.Logger,
		Metrics: cfg.Metrics,
	}
	if cfg.RateLimitPerMinute > 0 {
		rateLimitCfg.Limiter = middleware.NewLimiter(cfg.RateLimitPerMinute)
	}

	// Outer concerns first: observability wraps pacing wraps default headers.
	chain := []httpclient.Middleware{
		middleware.Observability(cfg.Logger, cfg.Metrics),
		middleware.RateLimit(rateLimitCfg),
		middleware.Headers(map[string]string{
			"Accept":     "application/json",
			"User-Agent": userAgent,
		}),
	}

	opts := []httpclient.Option{
		httpclient.WithMiddleware(chain...),
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, httpclient.WithHTTPClient(cfg.HTTPClient))
	} else {
		opts = append(opts, httpclient.WithTimeout(cfg.Timeout))
	}

	core := transport.New(transport.Config{
		BaseURL:    cfg.BaseURL,
		Client:     httpclient.New(opts...),
		MaxRetries: cfg.MaxRetries,
		Backoff:    backoff.Window{Min: cfg.MinRetryDelay, Max: cfg.MaxRetryDelay},
		Logger:     cfg.Logger,
		Metrics:    cfg.Metrics,
	})

	return &Client{
		key:       cfg.Key,
		token:     cfg.Token,
		transport: core,
	}, nil
}

// auth returns fresh Arguments seeded with the client credentials, so every
// query string starts with key and token.
func (c *Client) auth() *Arguments {
	return NewArguments().
		Set("key", c.key).
		Set("token", c.token)
}

// call executes one API call: credentials first, then call parameters, then
// the optional JSON body, finally decoding the result into out (skipped when
// out is nil).
func (c *Client) call(ctx context.Context, method transport.Method, path string, extra *Arguments, data any, out any) error {
	query := c.auth()
	if extra != nil {
		for _, k := range extra.Keys() {
			v, _ := extra.Get(k)
			query.Set(k, v)
		}
	}

	raw, err := c.transport.Execute(ctx, method, path, transport.Payload{
		Query: query,
		Data:  data,
	})
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "unmarshaling %s %s response", method.HTTPMethod(), path)
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, extra *Arguments, out any) error {
	return c.call(ctx, transport.MethodGet, path, extra, nil, out)
}

func (c *Client) post(ctx context.Context, path string, extra *Arguments, out any) error {
	return c.call(ctx, transport.MethodPost, path, extra, nil, out)
}

func (c *Client) put(ctx context.Context, path string, extra *Arguments, out any) error {
	return c.call(ctx, transport.MethodPut, path, extra, nil, out)
}

func (c *Client) delete(ctx context.Context, path string, extra *Arguments, out any) error {
	return c.call(ctx, transport.MethodDelete, path, extra, nil, out)
}

func (c *Client) postJSON(ctx context.Context, path string, data any, out any) error {
	return c.call(ctx, transport.MethodPostJSON, path, nil, data, out)
}

func (c *Client) putJSON(ctx context.Context, path string, data any, out any) error {
	return c.call(ctx, transport.MethodPutJSON, path, nil, data, out)
}
