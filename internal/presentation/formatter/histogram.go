package formatter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/clockin-tool/clockin/internal/analyzer"
	"github.com/clockin-tool/clockin/internal/util"
)

// HistogramFormatter renders the time-of-day workload histogram as a
// horizontal bar chart scaled to the terminal width.
type HistogramFormatter struct {
	Writer io.Writer
	Width  int
}

// NewHistogramFormatter creates a histogram formatter writing to w at
// the given total width.
func NewHistogramFormatter(w io.Writer, width int) *HistogramFormatter {
	return &HistogramFormatter{Writer: w, Width: width}
}

func clockLabel(offset time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(offset.Hours()), int(offset.Minutes())%60)
}

// Format writes the chart. Bars are scaled relative to the busiest slot;
// the numbers after each bar carry the exact values.
func (f *HistogramFormatter) Format(histogram *analyzer.Histogram) error {
	var busiest time.Duration
	for _, slot := range histogram.Slots {
		if slot.Duration > busiest {
			busiest = slot.Duration
		}
	}

	// "HH:MM-HH:MM  " prefix plus "  HH:MM:SS (12.3%)" suffix.
	barWidth := f.Width - 13 - 20
	if barWidth < 10 {
		barWidth = 10
	}

	for _, slot := range histogram.Slots {
		label := clockLabel(slot.Start) + "-" + clockLabel(slot.Start+histogram.SlotWidth)

		filled := 0
		if busiest > 0 {
			filled = int(float64(barWidth) * float64(slot.Duration) / float64(busiest))
		}
		bar := strings.Repeat("█", filled)

		line := fmt.Sprintf("%s  %s  %s (%.1f%%)",
			label,
			padRight(bar, barWidth),
			util.FormatDuration(slot.Duration),
			slot.Fraction*100)
		if _, err := fmt.Fprintln(f.Writer, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(f.Writer, "Total: %s\n", util.FormatDuration(histogram.Total))
	return err
}
