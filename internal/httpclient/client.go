// Package httpclient provides the HTTP client the Trello transport is built
// on, with support for chaining RoundTripper middleware.
package httpclient

import (
	"net/http"
	"time"
)

// DefaultTimeout is the timeout applied when no custom client is supplied.
const DefaultTimeout = 30 * time.Second

// Middleware wraps an http.RoundTripper to add behavior.
// Middleware is applied in order: the first middleware is outermost.
type Middleware func(http.RoundTripper) http.RoundTripper

// Client is an HTTP client that applies a middleware chain to every request.
type Client struct {
	base       *http.Client
	middleware []Middleware
}

// New creates a new client with the given options applied.
func New(opts ...Option) *Client {
	c := &Client{
		base: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if len(c.middleware) > 0 {
		transport := c.base.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}

		// Wrap in reverse order so the first middleware ends up outermost.
		for i := len(c.middleware) - 1; i >= 0; i-- {
			transport = c.middleware[i](transport)
		}

		c.base.Transport = transport
	}

	return c
}

// Do executes an HTTP request through the configured middleware chain.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	//nolint:wrapcheck // Transport-level errors are classified by the caller
	return c.base.Do(req)
}

// HTTPClient returns the underlying http.Client, useful when the client must
// be handed to code that expects *http.Client.
func (c *Client) HTTPClient() *http.Client {
	return c.base
}
