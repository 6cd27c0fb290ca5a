package transport

import (
	"errors"
	"testing"
)

func TestParseMethod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Method
		wantErr bool
	}{
		{
			name:  "GET",
			input: "GET",
			want:  MethodGet,
		},
		{
			name:  "lowercase get",
			input: "get",
			want:  MethodGet,
		},
		{
			name:  "mixed case Post",
			input: "Post",
			want:  MethodPost,
		},
		{
			name:  "PUT",
			input: "PUT",
			want:  MethodPut,
		},
		{
			name:  "DELETE",
			input: "DELETE",
			want:  MethodDelete,
		},
		{
			name:  "POST_JSON",
			input: "POST_JSON",
			want:  MethodPostJSON,
		},
		{
			name:  "lowercase put_json",
			input: "put_json",
			want:  MethodPutJSON,
		},
		{
			name:    "patch is unsupported",
			input:   "patch",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "FETCH",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseMethod(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseMethod(%q) expected error, got %v", tt.input, got)
				}

				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("ParseMethod(%q) error type = %T, want *ValidationError", tt.input, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseMethod(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMethod(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMethodHTTPMethod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method Method
		want   string
	}{
		{MethodGet, "GET"},
		{MethodPost, "POST"},
		{MethodPut, "PUT"},
		{MethodDelete, "DELETE"},
		{MethodPostJSON, "POST"},
		{MethodPutJSON, "PUT"},
	}

	for _, tt := range tests {
		tt := tt
		if got := tt.method.HTTPMethod(); got != tt.want {
			t.Errorf("%v.HTTPMethod() = %q, want %q", tt.method, got, tt.want)
		}
	}
}

func TestMethodJSONBody(t *testing.T) {
	t.Parallel()

	jsonModes := map[Method]bool{
		MethodGet:      false,
		MethodPost:     false,
		MethodPut:      false,
		MethodDelete:   false,
		MethodPostJSON: true,
		MethodPutJSON:  true,
	}

	for method, want := range jsonModes {
		if got := method.JSONBody(); got != want {
			t.Errorf("%v.JSONBody() = %v, want %v", method, got, want)
		}
	}
}
