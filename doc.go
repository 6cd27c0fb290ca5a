// Package trello provides a Go client for the Trello REST API.
//
// The client covers the common board, list, card, member, label, checklist,
// webhook, and custom field operations, plus a raw Request escape hatch for
// any endpoint without a dedicated method.
//
// # Rate Limiting
//
// Trello throttles roughly 100 requests per 10-second window per token. The
// client paces itself at 600 requests per minute by default, and when Trello
// still answers 429 the call is retried with a jittered backoff (500ms to 7s)
// up to a bounded number of attempts before failing with a *RateLimitError.
//
// # Errors
//
// Failed calls return typed errors that can be matched with errors.As:
//   - *APIError for non-2xx responses (carries status, headers, and body)
//   - *RateLimitError when the retry budget is exhausted on 429s
//   - *DecodeError when a 2xx body is not valid JSON
//   - *ValidationError for bad input rejected before any network activity
//
// # Example Usage
//
//	// Simple: create client with defaults
//	client, err := trello.New("your-api-key", "your-api-token")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	board, err := client.GetBoard(context.Background(), "4eea4ffc91e31d1746000046")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Board: %s (%s)\n", board.Name, board.URL)
//
// # Custom Configuration
//
// For custom retry or pacing behavior:
//
//	client, err := trello.NewWithConfig(&trello.ClientConfig{
//	    Key:                "your-api-key",
//	    Token:              "your-api-token",
//	    MaxRetries:         5,
//	    RateLimitPerMinute: 300,
//	})
//
// # Raw Requests
//
// Endpoints without a dedicated method are reachable through Request, which
// accepts the verb as a string ("GET", "POST", "PUT", "DELETE", or the
// JSON-body variants "POST_JSON" and "PUT_JSON") and returns the raw
// response:
//
//	raw, err := client.Request(ctx, "GET", "/1/search", map[string]any{
//	    "query": "needle",
//	})
package trello
