package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/clockin-tool/clockin/internal/analyzer"
	"github.com/clockin-tool/clockin/internal/core/calendar"
	"github.com/clockin-tool/clockin/internal/util"
)

// SummaryFormatter renders the per-day summary grouped by week, with
// week subtotals and a grand total.
type SummaryFormatter struct {
	Writer io.Writer
}

// NewSummaryFormatter creates a summary formatter writing to w.
func NewSummaryFormatter(w io.Writer) *SummaryFormatter {
	return &SummaryFormatter{Writer: w}
}

// Format writes the report.
func (f *SummaryFormatter) Format(summary *analyzer.Summary) error {
	if len(summary.Days) == 0 {
		_, err := fmt.Fprintln(f.Writer, "No sessions recorded.")
		return err
	}

	dateWidth := len("2006-01-02")
	var currentWeek calendar.Week
	haveWeek := false

	for _, day := range summary.Days {
		week := calendar.WeekOf(day.Date)
		if !haveWeek || week != currentWeek {
			if haveWeek {
				if err := f.weekTotal(summary, currentWeek); err != nil {
					return err
				}
			}
			currentWeek = week
			haveWeek = true
			if _, err := fmt.Fprintf(f.Writer, "Week of %s\n", week.Monday()); err != nil {
				return err
			}
		}

		line := fmt.Sprintf("  %s  %s  %s",
			padRight(day.Date.String(), dateWidth),
			util.FormatDuration(day.Duration),
			strings.Join(day.Descriptions, "; "))
		if _, err := fmt.Fprintln(f.Writer, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	if err := f.weekTotal(summary, currentWeek); err != nil {
		return err
	}

	_, err := fmt.Fprintf(f.Writer, "Total: %s\n",
		util.FormatDuration(summary.Duration(calendar.Unbounded())))
	return err
}

func (f *SummaryFormatter) weekTotal(summary *analyzer.Summary, week calendar.Week) error {
	_, err := fmt.Fprintf(f.Writer, "  week total: %s\n\n",
		util.FormatDuration(summary.WeekDuration(week)))
	return err
}
