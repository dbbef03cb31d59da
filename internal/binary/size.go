package binary

import "fmt"

// FormatBytes renders a byte count for operators: "512 B", "3.4 KB", "1.0 MB".
// Units are powers of 1024 with one decimal place.
func FormatBytes(n int64) string {
	const (
		kb = 1024
		mb = 1024 * 1024
	)
	switch {
	case n < kb:
		return fmt.Sprintf("%d B", n)
	case n < mb:
		return fmt.Sprintf("%.1f KB", float64(n)/kb)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/mb)
	}
}
