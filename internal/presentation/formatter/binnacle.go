package formatter

import (
	"fmt"
	"io"

	"github.com/clockin-tool/clockin/internal/analyzer"
	"github.com/clockin-tool/clockin/internal/core/calendar"
	"github.com/clockin-tool/clockin/internal/util"
)

// BinnacleFormatter renders the month/day/category report as markdown-
// flavored text. Totals for a month or day that has not finished yet are
// marked incomplete.
type BinnacleFormatter struct {
	Writer io.Writer
	Today  calendar.Date
}

// NewBinnacleFormatter creates a binnacle formatter writing to w; today
// decides which totals are final.
func NewBinnacleFormatter(w io.Writer, today calendar.Date) *BinnacleFormatter {
	return &BinnacleFormatter{Writer: w, Today: today}
}

// Format writes the report.
func (f *BinnacleFormatter) Format(binnacle *analyzer.Binnacle) error {
	if len(binnacle.Months) == 0 {
		_, err := fmt.Fprintln(f.Writer, "No sessions recorded.")
		return err
	}

	for _, month := range binnacle.Months {
		monthDone := f.Today.After(month.Month.Last())
		if _, err := fmt.Fprintf(f.Writer, "## %s (%s)\n\n",
			month.Month, util.FormatDurationUncertain(month.Duration, monthDone)); err != nil {
			return err
		}

		for _, day := range month.Days {
			if _, err := fmt.Fprintf(f.Writer, "%02d/%02d/%04d\n\n",
				day.Date.Day, int(day.Date.Month), day.Date.Year); err != nil {
				return err
			}
			dayDone := f.Today.After(day.Date)
			for _, category := range day.Categories {
				if _, err := fmt.Fprintf(f.Writer, "(%s: %s)\n",
					category.Category, util.FormatDurationUncertain(category.Duration, dayDone)); err != nil {
					return err
				}
				for _, subject := range category.Subjects {
					if _, err := fmt.Fprintf(f.Writer, "\t- %s\n", subject); err != nil {
						return err
					}
				}
				if _, err := fmt.Fprintln(f.Writer); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
