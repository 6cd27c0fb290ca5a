package transport

import (
	"fmt"
	"strings"
)

// Method identifies the HTTP verb of a call plus its body-encoding mode.
// The JSON variants are not distinct wire methods: POST_JSON goes out as
// POST with a JSON body, while plain POST carries all parameters in the
// query string.
type Method string

const (
	MethodGet      Method = "GET"
	MethodPost     Method = "POST"
	MethodPut      Method = "PUT"
	MethodDelete   Method = "DELETE"
	MethodPostJSON Method = "POST_JSON"
	MethodPutJSON  Method = "PUT_JSON"
)

const jsonSuffix = "_JSON"

// ParseMethod converts a caller-supplied method name into a Method.
// Matching is case-insensitive. Anything outside the supported set fails
// with a *ValidationError before any network activity.
func ParseMethod(name string) (Method, error) {
	switch m := Method(strings.ToUpper(name)); m {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodPostJSON, MethodPutJSON:
		return m, nil
	default:
		return "", &ValidationError{
			Message: fmt.Sprintf("unsupported request method %q, must be one of GET, POST, PUT, DELETE, POST_JSON, PUT_JSON", name),
		}
	}
}

// HTTPMethod returns the wire method with any JSON suffix stripped.
func (m Method) HTTPMethod() string {
	return strings.TrimSuffix(string(m), jsonSuffix)
}

// JSONBody reports whether the call sends its data as a JSON request body.
func (m Method) JSONBody() bool {
	return strings.HasSuffix(string(m), jsonSuffix)
}

func (m Method) String() string {
	return string(m)
}
