package httpclient_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cedric-marchal/trello/internal/httpclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	client := httpclient.New()
	if client == nil {
		t.Fatal("New() returned nil")
	}

	if client.HTTPClient() == nil {
		t.Fatal("HTTPClient() returned nil")
	}

	if client.HTTPClient().Timeout != httpclient.DefaultTimeout {
		t.Errorf("Default timeout = %v, want %v", client.HTTPClient().Timeout, httpclient.DefaultTimeout)
	}
}

func TestWithTimeout(t *testing.T) {
	t.Parallel()

	timeout := 10 * time.Second
	client := httpclient.New(httpclient.WithTimeout(timeout))

	if client.HTTPClient().Timeout != timeout {
		t.Errorf("Timeout = %v, want %v", client.HTTPClient().Timeout, timeout)
	}
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	customClient := &http.Client{
		Timeout: 5 * time.Second,
	}

	client := httpclient.New(httpclient.WithHTTPClient(customClient))

	if client.HTTPClient() != customClient {
		t.Error("HTTPClient() did not return the custom client")
	}
}

func TestMiddlewareChaining(t *testing.T) {
	t.Parallel()

	var order []string

	mark := func(name string) httpclient.Middleware {
		return func(next http.RoundTripper) http.RoundTripper {
			return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
				order = append(order, name+"-before")
				resp, err := next.RoundTrip(req)
				order = append(order, name+"-after")
				return resp, err
			})
		}
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "server")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := httpclient.New(
		httpclient.WithMiddleware(mark("outer"), mark("inner")),
	)

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do() failed: %v", err)
	}
	defer resp.Body.Close()

	// First middleware is outermost
	expectedOrder := []string{
		"outer-before",
		"inner-before",
		"server",
		"inner-after",
		"outer-after",
	}

	if len(order) != len(expectedOrder) {
		t.Fatalf("Order length = %d, want %d", len(order), len(expectedOrder))
	}

	for i, want := range expectedOrder {
		if order[i] != want {
			t.Errorf("order[%d] = %s, want %s", i, order[i], want)
		}
	}
}

func TestDo(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"abc"}`))
	}))
	defer server.Close()

	client := httpclient.New()
	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do() failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != `{"id":"abc"}` {
		t.Errorf("Body = %s, want %s", string(body), `{"id":"abc"}`)
	}
}

// roundTripperFunc is an adapter to use functions as http.RoundTripper.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
