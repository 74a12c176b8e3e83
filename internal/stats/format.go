package stats

import (
	"fmt"
	"time"
)

// FormatSeconds formats a duration given in seconds with a unit scaled to
// its magnitude, down to sub-millisecond precision.
func FormatSeconds(secs float64) string {
	switch {
	case secs >= 60.0:
		mins := int(secs / 60.0)
		return fmt.Sprintf("%dm %.3fs", mins, secs-float64(mins)*60.0)
	case secs >= 1.0:
		return fmt.Sprintf("%.3fs", secs)
	case secs >= 0.001:
		return fmt.Sprintf("%.1fms", secs*1000.0)
	default:
		return fmt.Sprintf("%.0fµs", secs*1_000_000.0)
	}
}

// FormatDuration formats a time.Duration via FormatSeconds.
func FormatDuration(d time.Duration) string {
	return FormatSeconds(d.Seconds())
}

// FormatBytes formats a byte count with binary-scaled suffixes.
// Zero renders as "N/A": it means no poll landed, not a zero-byte process.
func FormatBytes(bytes uint64) string {
	if bytes == 0 {
		return "N/A"
	}
	kb := float64(bytes) / 1024.0
	mb := kb / 1024.0
	gb := mb / 1024.0
	switch {
	case gb >= 1.0:
		return fmt.Sprintf("%.1f GB", gb)
	case mb >= 1.0:
		return fmt.Sprintf("%.1f MB", mb)
	case kb >= 1.0:
		return fmt.Sprintf("%.1f KB", kb)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
