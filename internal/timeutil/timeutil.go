package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Display layouts for the dashboard view model.
const (
	gameDateLayout = "Mon, Jan 2"
	kickoffLayout  = "3:04 PM MST"
)

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatGameDate renders the short weekday/month/day label shown on game cards.
func FormatGameDate(t time.Time) string {
	return t.Format(gameDateLayout)
}

// FormatKickoff renders a short localized clock time for scheduled games.
func FormatKickoff(t time.Time) string {
	return t.Format(kickoffLayout)
}

// FormatRelative renders a coarse "time ago" label for news timestamps.
func FormatRelative(published, now time.Time) string {
	hours := int(now.Sub(published).Hours())
	switch {
	case hours < 1:
		return "Just now"
	case hours < 24:
		return fmt.Sprintf("%d hours ago", hours)
	case hours < 48:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", hours/24)
	}
}
