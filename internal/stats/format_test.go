package stats

import (
	"testing"
	"time"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name string
		secs float64
		want string
	}{
		{"microseconds", 0.000123, "123µs"},
		{"sub-millisecond boundary", 0.0009, "900µs"},
		{"milliseconds", 0.0345, "34.5ms"},
		{"one millisecond", 0.001, "1.0ms"},
		{"seconds", 1.5, "1.500s"},
		{"just under a minute", 59.999, "59.999s"},
		{"minutes", 90.25, "1m 30.250s"},
		{"whole minutes", 120.0, "2m 0.000s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSeconds(tt.secs); got != tt.want {
				t.Errorf("FormatSeconds(%v) = %q, want %q", tt.secs, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	if got := FormatDuration(1500 * time.Millisecond); got != "1.500s" {
		t.Errorf("FormatDuration(1.5s) = %q, want %q", got, "1.500s")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes uint64
		want  string
	}{
		{"zero is unmeasured", 0, "N/A"},
		{"bytes", 512, "512 B"},
		{"kilobytes", 10 * 1024, "10.0 KB"},
		{"megabytes", 5 * 1024 * 1024, "5.0 MB"},
		{"gigabytes", 3 * 1024 * 1024 * 1024, "3.0 GB"},
		{"just under a KB", 1023, "1023 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBytes(tt.bytes); got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
