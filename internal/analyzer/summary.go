package analyzer

import (
	"fmt"
	"sort"
	"time"

	"github.com/clockin-tool/clockin/internal/core/calendar"
	"github.com/clockin-tool/clockin/internal/core/session"
)

// DaySummary is the per-calendar-day aggregate: total worked time plus
// the distinct non-empty descriptions recorded that day, sorted for
// deterministic report output.
type DaySummary struct {
	Date         calendar.Date
	Duration     time.Duration
	Descriptions []string
}

// Summary is an ordered per-day index over split sub-sessions, ascending
// by date.
type Summary struct {
	Days []DaySummary
}

// Summarize folds day-split sub-sessions into a Summary in a single
// forward pass. The input must ascend by date, which SplitDays output
// over an append-only log guarantees; a date regression is reported as
// an error rather than silently mis-bucketed. Durations accumulate each
// sub-session's instant delta.
func Summarize(parts []session.Session) (*Summary, error) {
	summary := &Summary{}

	var bucket *DaySummary
	var seen map[string]struct{}

	flush := func() {
		if bucket == nil {
			return
		}
		sort.Strings(bucket.Descriptions)
		summary.Days = append(summary.Days, *bucket)
		bucket = nil
	}

	for _, part := range parts {
		date := part.Date()
		if bucket != nil && date != bucket.Date {
			if date.Before(bucket.Date) {
				return nil, fmt.Errorf("sessions out of order: %s after %s", date, bucket.Date)
			}
			flush()
		}
		if bucket == nil {
			bucket = &DaySummary{Date: date}
			seen = make(map[string]struct{})
		}

		bucket.Duration += part.Duration()
		if part.Description != "" {
			if _, dup := seen[part.Description]; !dup {
				seen[part.Description] = struct{}{}
				bucket.Descriptions = append(bucket.Descriptions, part.Description)
			}
		}
	}
	flush()

	return summary, nil
}

// Duration sums worked time over every day falling in r.
func (s *Summary) Duration(r calendar.Range) time.Duration {
	var total time.Duration
	for _, day := range s.Days {
		if r.Contains(day.Date) {
			total += day.Duration
		}
	}
	return total
}

// WeekDuration sums worked time over the week's Monday through Sunday.
func (s *Summary) WeekDuration(w calendar.Week) time.Duration {
	return s.Duration(calendar.WeekRange(w))
}

// MonthDuration sums worked time over the month's calendar days.
func (s *Summary) MonthDuration(m calendar.Month) time.Duration {
	return s.Duration(calendar.MonthRange(m))
}
