package analyzer

import (
	"fmt"
	"sort"
	"time"

	"github.com/clockin-tool/clockin/internal/core/calendar"
	"github.com/clockin-tool/clockin/internal/core/session"
)

// UncategorizedLabel is the fixed category name given to sessions whose
// description carries no "category: " prefix.
const UncategorizedLabel = "uncategorized"

// CategoryDay aggregates one (day, category) pair: total time plus the
// distinct task subjects worked under that category.
type CategoryDay struct {
	Category string
	Duration time.Duration
	Subjects []string
}

// BinnacleDay holds one day's categories, sorted by category name so the
// report order is deterministic.
type BinnacleDay struct {
	Date       calendar.Date
	Categories []CategoryDay
}

// BinnacleMonth holds one month of the binnacle report.
type BinnacleMonth struct {
	Month    calendar.Month
	Duration time.Duration
	Days     []BinnacleDay
}

// Binnacle is the month/day/category report data, ascending by month
// and day.
type Binnacle struct {
	Months []BinnacleMonth
}

// binnacleBucket accumulates one day while its sub-sessions stream in.
type binnacleBucket struct {
	date       calendar.Date
	categories map[string]*CategoryDay
	seen       map[string]map[string]struct{}
}

func newBinnacleBucket(date calendar.Date) *binnacleBucket {
	return &binnacleBucket{
		date:       date,
		categories: make(map[string]*CategoryDay),
		seen:       make(map[string]map[string]struct{}),
	}
}

func (b *binnacleBucket) add(part session.Session) {
	body := ParseBody(part.Description)
	category := UncategorizedLabel
	if body.Categorized {
		category = body.Category
	}

	bucket, ok := b.categories[category]
	if !ok {
		bucket = &CategoryDay{Category: category}
		b.categories[category] = bucket
		b.seen[category] = make(map[string]struct{})
	}

	bucket.Duration += part.Duration()
	if body.Subject != "" {
		if _, dup := b.seen[category][body.Subject]; !dup {
			b.seen[category][body.Subject] = struct{}{}
			bucket.Subjects = append(bucket.Subjects, body.Subject)
		}
	}
}

func (b *binnacleBucket) finish() BinnacleDay {
	day := BinnacleDay{Date: b.date}
	for _, category := range b.categories {
		day.Categories = append(day.Categories, *category)
	}
	sort.Slice(day.Categories, func(i, j int) bool {
		return day.Categories[i].Category < day.Categories[j].Category
	})
	return day
}

// BuildBinnacle folds day-split sub-sessions into the month/day/category
// report. Like Summarize it is a single forward pass over date-ordered
// input and fails fast on a date regression.
func BuildBinnacle(parts []session.Session) (*Binnacle, error) {
	binnacle := &Binnacle{}

	var month *BinnacleMonth
	var bucket *binnacleBucket

	flushDay := func() {
		if bucket == nil {
			return
		}
		month.Days = append(month.Days, bucket.finish())
		bucket = nil
	}
	flushMonth := func() {
		if month == nil {
			return
		}
		flushDay()
		binnacle.Months = append(binnacle.Months, *month)
		month = nil
	}

	for _, part := range parts {
		date := part.Date()
		monthID := calendar.MonthOf(date)

		if month != nil && monthID != month.Month {
			if monthID.Before(month.Month) {
				return nil, fmt.Errorf("sessions out of order: %s after %s", date, month.Month)
			}
			flushMonth()
		}
		if month == nil {
			month = &BinnacleMonth{Month: monthID}
		}

		if bucket != nil && date != bucket.date {
			if date.Before(bucket.date) {
				return nil, fmt.Errorf("sessions out of order: %s after %s", date, bucket.date)
			}
			flushDay()
		}
		if bucket == nil {
			bucket = newBinnacleBucket(date)
		}

		month.Duration += part.Duration()
		bucket.add(part)
	}
	flushMonth()

	return binnacle, nil
}
