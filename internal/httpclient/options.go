package httpclient

import (
	"net/http"
	"time"
)

// Option is a functional option for configuring the client.
type Option func(*Client)

// WithHTTPClient sets the underlying http.Client.
// If not provided, a default client with a 30s timeout is used.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.base = client
		}
	}
}

// WithTimeout sets the request timeout on the underlying client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.base.Timeout = timeout
	}
}

// WithTransport sets the HTTP transport.
// If middleware is also configured, the transport is wrapped by it.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.base.Transport = transport
	}
}

// WithMiddleware appends middleware to the client's chain.
// The first middleware in the chain becomes the outermost layer:
//
//	WithMiddleware(A, B, C) creates chain: A(B(C(transport)))
//	Request flow: A -> B -> C -> transport -> server
//
// Outer concerns (logging, metrics) should therefore come before inner
// concerns (rate limiting).
func WithMiddleware(middleware ...Middleware) Option {
	return func(c *Client) {
		c.middleware = append(c.middleware, middleware...)
	}
}
