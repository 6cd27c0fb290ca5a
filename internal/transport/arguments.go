package transport

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Arguments is an insertion-ordered mapping of query parameter names to
// values. Trello's query strings are order-sensitive by convention (auth
// parameters first), and url.Values sorts keys on Encode, so the client
// carries its own ordered type.
type Arguments struct {
	keys   []string
	values map[string]any
}

// NewArguments returns an empty Arguments.
func NewArguments() *Arguments {
	return &Arguments{
		values: make(map[string]any),
	}
}

// ArgumentsFromMap builds Arguments from a plain map. Map iteration order is
// random, so keys are sorted to keep the encoded query deterministic.
func ArgumentsFromMap(m map[string]any) *Arguments {
	args := NewArguments()

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		args.Set(k, m[k])
	}

	return args
}

// Set adds or replaces a parameter. New keys keep insertion order; replacing
// an existing key keeps its original position. Returns the receiver for
// chaining.
func (a *Arguments) Set(key string, value any) *Arguments {
	if _, exists := a.values[key]; !exists {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value

	return a
}

// Get returns the value stored under key.
func (a *Arguments) Get(key string) (any, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Len returns the number of parameters.
func (a *Arguments) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Keys returns the parameter names in insertion order.
func (a *Arguments) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Clone returns a shallow copy that can be modified independently.
func (a *Arguments) Clone() *Arguments {
	clone := NewArguments()
	for _, k := range a.keys {
		clone.Set(k, a.values[k])
	}
	return clone
}

// Values returns the parameters as a plain map with their original values.
func (a *Arguments) Values() map[string]any {
	out := make(map[string]any, len(a.keys))
	for _, k := range a.keys {
		out[k] = a.values[k]
	}
	return out
}

// Map returns the parameters as a plain map, stringified.
func (a *Arguments) Map() map[string]string {
	out := make(map[string]string, len(a.keys))
	for _, k := range a.keys {
		out[k] = Stringify(a.values[k])
	}
	return out
}

// Encode renders the query string in insertion order. Every value is
// stringified and URL-encoded (space becomes '+').
func (a *Arguments) Encode() string {
	if a.Len() == 0 {
		return ""
	}

	var b strings.Builder
	for i, k := range a.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(Stringify(a.values[k])))
	}

	return b.String()
}

// objectPlaceholder is what structured values collapse to in a query string,
// mirroring the API's JavaScript-derived parameter encoding.
const objectPlaceholder = "[object Object]"

// Stringify converts an arbitrary value to its query-string form:
// scalars render via strconv, nil renders as "null", slices comma-join
// their stringified elements, and maps/structs collapse to the fixed
// "[object Object]" placeholder.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i] = Stringify(rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	case reflect.Map, reflect.Struct:
		return objectPlaceholder
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return "null"
		}
		return Stringify(rv.Elem().Interface())
	default:
		return fmt.Sprintf("%v", value)
	}
}
