package util

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration as HH:MM:SS. Hours are not capped at
// 24 so multi-day totals stay readable.
func FormatDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	hours := secs / 3600
	minutes := secs / 60 % 60
	seconds := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatDurationUncertain marks totals that include an unfinished span,
// e.g. a month that has not ended yet or an open session.
func FormatDurationUncertain(d time.Duration, complete bool) string {
	if complete {
		return FormatDuration(d)
	}
	return FormatDuration(d) + " (incomplete)"
}
