package backoff

import (
	"testing"
	"time"
)

func TestThrottled(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		statusCode int
		want       bool
	}{
		{
			name:       "429 Too Many Requests",
			statusCode: 429,
			want:       true,
		},
		{
			name:       "200 OK",
			statusCode: 200,
			want:       false,
		},
		{
			name:       "400 Bad Request",
			statusCode: 400,
			want:       false,
		},
		{
			name:       "404 Not Found",
			statusCode: 404,
			want:       false,
		},
		{
			name:       "500 Internal Server Error",
			statusCode: 500,
			want:       false,
		},
		{
			name:       "503 Service Unavailable",
			statusCode: 503,
			want:       false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Throttled(tt.statusCode); got != tt.want {
				t.Errorf("Throttled(%d) = %v, want %v", tt.statusCode, got, tt.want)
			}
		})
	}
}

func TestWindowDelay(t *testing.T) {
	t.Parallel()

	t.Run("delay is within window", func(t *testing.T) {
		t.Parallel()

		w := Window{Min: 500 * time.Millisecond, Max: 7000 * time.Millisecond}

		for i := 0; i < 1000; i++ {
			d := w.Delay()
			if d < w.Min || d >= w.Max {
				t.Fatalf("Delay() = %v, want in [%v, %v)", d, w.Min, w.Max)
			}
		}
	})

	t.Run("degenerate window returns min", func(t *testing.T) {
		t.Parallel()

		w := Window{Min: time.Second, Max: time.Second}
		if got := w.Delay(); got != time.Second {
			t.Errorf("Delay() = %v, want %v", got, time.Second)
		}
	})

	t.Run("zero window returns zero", func(t *testing.T) {
		t.Parallel()

		var w Window
		if got := w.Delay(); got != 0 {
			t.Errorf("Delay() = %v, want 0", got)
		}
	})
}

func BenchmarkWindowDelay(b *testing.B) {
	w := Window{Min: 500 * time.Millisecond, Max: 7000 * time.Millisecond}

	for i := 0; i < b.N; i++ {
		w.Delay()
	}
}
