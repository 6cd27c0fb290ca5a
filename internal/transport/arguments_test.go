package transport

import (
	"testing"
	"time"
)

func TestArgumentsEncodeOrder(t *testing.T) {
	t.Parallel()

	args := NewArguments().
		Set("key", "k").
		Set("token", "t").
		Set("name", "Card Title")

	want := "key=k&token=t&name=Card+Title"
	if got := args.Encode(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestArgumentsSetReplaceKeepsPosition(t *testing.T) {
	t.Parallel()

	args := NewArguments().
		Set("key", "k").
		Set("name", "old").
		Set("token", "t").
		Set("name", "new")

	want := "key=k&name=new&token=t"
	if got := args.Encode(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestArgumentsFromMapSortsKeys(t *testing.T) {
	t.Parallel()

	args := ArgumentsFromMap(map[string]any{
		"pos":    "top",
		"name":   "n",
		"closed": false,
	})

	want := "closed=false&name=n&pos=top"
	if got := args.Encode(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestArgumentsClone(t *testing.T) {
	t.Parallel()

	orig := NewArguments().Set("key", "k")
	clone := orig.Clone().Set("name", "n")

	if got := orig.Encode(); got != "key=k" {
		t.Errorf("original mutated by clone: %q", got)
	}
	if got := clone.Encode(); got != "key=k&name=n" {
		t.Errorf("clone Encode() = %q, want %q", got, "key=k&name=n")
	}
}

func TestArgumentsEncodeEscapes(t *testing.T) {
	t.Parallel()

	args := NewArguments().Set("desc", "a&b=c d")

	want := "desc=a%26b%3Dc+d"
	if got := args.Encode(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestStringify(t *testing.T) {
	t.Parallel()

	due := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{
			name:  "string",
			value: "hello",
			want:  "hello",
		},
		{
			name:  "nil renders as null",
			value: nil,
			want:  "null",
		},
		{
			name:  "bool true",
			value: true,
			want:  "true",
		},
		{
			name:  "bool false",
			value: false,
			want:  "false",
		},
		{
			name:  "int",
			value: 42,
			want:  "42",
		},
		{
			name:  "float",
			value: 16384.5,
			want:  "16384.5",
		},
		{
			name:  "whole float has no decimal point",
			value: 65536.0,
			want:  "65536",
		},
		{
			name:  "string slice joins with comma",
			value: []string{"red", "green", "blue"},
			want:  "red,green,blue",
		},
		{
			name:  "any slice joins with comma",
			value: []any{"a", 1, true},
			want:  "a,1,true",
		},
		{
			name:  "empty slice",
			value: []string{},
			want:  "",
		},
		{
			name:  "map collapses to placeholder",
			value: map[string]any{"a": 1},
			want:  "[object Object]",
		},
		{
			name:  "struct collapses to placeholder",
			value: struct{ A int }{A: 1},
			want:  "[object Object]",
		},
		{
			name:  "nil pointer renders as null",
			value: (*struct{ A int })(nil),
			want:  "null",
		},
		{
			name:  "time formats as RFC3339",
			value: due,
			want:  "2026-03-01T12:00:00Z",
		},
		{
			name:  "uint",
			value: uint8(7),
			want:  "7",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Stringify(tt.value); got != tt.want {
				t.Errorf("Stringify(%#v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestArgumentsNilLen(t *testing.T) {
	t.Parallel()

	var args *Arguments
	if args.Len() != 0 {
		t.Errorf("nil Arguments Len() = %d, want 0", args.Len())
	}
}
