// Package format renders byte counts and durations for display.
package format

import (
	"fmt"
	"time"
)

var byteSuffixes = []string{"Bytes", "KB", "MB", "GB", "TB", "PB", "EB", "ZB"}

// Bytes renders a byte count using base-1024 units with two decimal
// places, e.g. 1536 -> "1.50 KB". Zero renders as "0.00 Bytes".
func Bytes(n int64) string {
	size := float64(n)
	i := 0
	for size >= 1024 && i < len(byteSuffixes)-1 {
		size /= 1024
		i++
	}
	return fmt.Sprintf("%.2f %s", size, byteSuffixes[i])
}

// Seconds renders a duration as fractional seconds with four decimal
// places, e.g. "0.3514 seconds".
func Seconds(d time.Duration) string {
	return fmt.Sprintf("%.4f seconds", d.Seconds())
}
