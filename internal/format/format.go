// Package format renders durations, sizes and simulation timestamps for
// the report tables.
package format

import (
	"fmt"
	"time"
)

// Duration renders a load duration at a precision matching its magnitude,
// from microseconds up to minutes.
func Duration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.0fµs", float64(d.Microseconds()))
	}
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d.Milliseconds()))
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}

	return fmt.Sprintf("%.1fm", d.Minutes())
}

// Bytes renders a file size in binary units (KiB, MiB, ...).
func Bytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// Seconds formats a simulation timestamp expressed in seconds.
func Seconds(s float64) string {
	return fmt.Sprintf("%.2f s", s)
}
