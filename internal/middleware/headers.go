// Package middleware provides reusable HTTP middleware components.
package middleware

import (
	"maps"
	"net/http"
)

// Headers returns a middleware that sets default headers on all requests.
// Headers already present on a request are left untouched, so per-call
// headers (e.g. Content-Type for JSON bodies) always win.
func Headers(defaults map[string]string) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return &headersTransport{
			next:     next,
			defaults: defaults,
		}
	}
}

type headersTransport struct {
	next     http.RoundTripper
	defaults map[string]string
}

func (t *headersTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone request to avoid modifying the original
	req = cloneRequest(req)

	for name, value := range t.defaults {
		if req.Header.Get(name) == "" {
			req.Header.Set(name, value)
		}
	}

	//nolint:wrapcheck // Middleware passes through errors from next handler in chain
	return t.next.RoundTrip(req)
}

// cloneRequest creates a shallow copy of the request with a cloned header map.
func cloneRequest(req *http.Request) *http.Request {
	r := new(http.Request)
	*r = *req
	r.Header = make(http.Header, len(req.Header))
	maps.Copy(r.Header, req.Header)
	return r
}
