package trello

import "github.com/cedric-marchal/trello/internal/transport"

// Arguments is an insertion-ordered mapping of query parameter names to
// values. The typed facade builds these internally; callers need them for
// the WithExtraParams variants and the Request escape hatch.
//
//	args := trello.NewArguments().
//		Set("fields", "name,desc").
//		Set("filter", "open")
type Arguments = transport.Arguments

// NewArguments returns an empty Arguments.
func NewArguments() *Arguments {
	return transport.NewArguments()
}

// ArgumentsFromMap builds Arguments from a plain map, with keys sorted for
// deterministic encoding.
func ArgumentsFromMap(m map[string]any) *Arguments {
	return transport.ArgumentsFromMap(m)
}
