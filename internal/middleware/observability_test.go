package middleware

import (
	"testing"
)

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "board ID",
			input:    "/1/boards/5abbe4b7ddc1b351ef961414",
			expected: "/1/boards/:id",
		},
		{
			name:     "card ID with sub-resource",
			input:    "/1/cards/5abbe4b7ddc1b351ef961414/actions",
			expected: "/1/cards/:id/actions",
		},
		{
			name:     "multiple ObjectIDs",
			input:    "/1/cards/5abbe4b7ddc1b351ef961414/idMembers/507f1f77bcf86cd799439011",
			expected: "/1/cards/:id/idMembers/:id",
		},
		{
			name:     "long numeric ID",
			input:    "/1/cards/12345678",
			expected: "/1/cards/:id",
		},
		{
			name:     "API version prefix preserved",
			input:    "/1/boards/",
			expected: "/1/boards/",
		},
		{
			name:     "fixed segments untouched",
			input:    "/1/webhooks/",
			expected: "/1/webhooks/",
		},
		{
			name:     "empty path",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizePath(tt.input); got != tt.expected {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizePathCache(t *testing.T) {
	t.Parallel()

	path := "/1/boards/5abbe4b7ddc1b351ef961414/lists"

	first := NormalizePath(path)
	second := NormalizePath(path)

	if first != second {
		t.Errorf("cached result %q differs from first result %q", second, first)
	}

	if first != "/1/boards/:id/lists" {
		t.Errorf("NormalizePath(%q) = %q, want %q", path, first, "/1/boards/:id/lists")
	}
}
