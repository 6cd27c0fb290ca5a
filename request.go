package trello

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cedric-marchal/trello/internal/transport"
)

// Request is the low-level escape hatch for endpoints the typed facade does
// not model. It validates its inputs, injects the client credentials, and
// returns the raw JSON response.
//
// requestMethod must be one of GET, POST, PUT, DELETE, POST_JSON, PUT_JSON
// (case-insensitive); anything else fails with a *ValidationError before any
// network activity. options may be nil, *Arguments, or map[string]any; any
// other type fails with a *ValidationError.
//
// For form-mode methods the options are folded into the query string. For
// the JSON variants they become the JSON request body while the credentials
// stay in the query.
//
//	raw, err := client.Request(ctx, "GET", "/1/boards/"+id+"/memberships", nil)
func (c *Client) Request(ctx context.Context, requestMethod, path string, options any) (json.RawMessage, error) {
	method, err := transport.ParseMethod(requestMethod)
	if err != nil {
		return nil, err
	}

	var extra *Arguments
	switch o := options.(type) {
	case nil:
	case *Arguments:
		extra = o
	case map[string]any:
		extra = ArgumentsFromMap(o)
	default:
		return nil, &ValidationError{
			Message: fmt.Sprintf("options must be *trello.Arguments or map[string]any, got %T", options),
		}
	}

	payload := transport.Payload{Query: c.auth()}

	if method.JSONBody() {
		if extra.Len() > 0 {
			payload.Data = extra.Values()
		}
	} else if extra != nil {
		for _, k := range extra.Keys() {
			v, _ := extra.Get(k)
			payload.Query.Set(k, v)
		}
	}

	//nolint:wrapcheck // The escape hatch surfaces transport errors verbatim
	return c.transport.Execute(ctx, method, path, payload)
}
