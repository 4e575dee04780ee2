package styles

import (
	"fmt"
	"time"
)

const (
	hoursPerDay = 24
	daysPerWeek = 7
)

// RelativeTime formats t relative to now, e.g. "5m ago".
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < hoursPerDay*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < daysPerWeek*hoursPerDay*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/hoursPerDay))
	default:
		return fmt.Sprintf("%dw ago", int(diff.Hours()/hoursPerDay/daysPerWeek))
	}
}

// FormatBytes formats a byte count with a binary unit.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
