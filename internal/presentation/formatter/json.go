package formatter

import (
	"fmt"
	"io"
	"time"

	"github.com/bytedance/sonic"

	"github.com/clockin-tool/clockin/internal/analyzer"
)

// JSONFormatter renders any of the report aggregates as indented JSON
// for scripting. Durations are reported in whole seconds.
type JSONFormatter struct {
	Writer io.Writer
}

// NewJSONFormatter creates a JSON formatter writing to w.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{Writer: w}
}

type jsonDay struct {
	Date            string   `json:"date"`
	DurationSeconds int64    `json:"durationSeconds"`
	Descriptions    []string `json:"descriptions,omitempty"`
}

type jsonCategory struct {
	Category        string   `json:"category"`
	DurationSeconds int64    `json:"durationSeconds"`
	Subjects        []string `json:"subjects,omitempty"`
}

type jsonBinnacleDay struct {
	Date       string         `json:"date"`
	Categories []jsonCategory `json:"categories"`
}

type jsonBinnacleMonth struct {
	Year            int               `json:"year"`
	Month           int               `json:"month"`
	DurationSeconds int64             `json:"durationSeconds"`
	Days            []jsonBinnacleDay `json:"days"`
}

type jsonSlot struct {
	Start           string  `json:"start"`
	DurationSeconds int64   `json:"durationSeconds"`
	Fraction        float64 `json:"fraction"`
}

type jsonHistogram struct {
	SlotWidthSeconds int64      `json:"slotWidthSeconds"`
	TotalSeconds     int64      `json:"totalSeconds"`
	Slots            []jsonSlot `json:"slots"`
}

func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}

func (f *JSONFormatter) encode(v interface{}) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.Writer, string(data))
	return err
}

// FormatSummary writes the per-day summary as JSON.
func (f *JSONFormatter) FormatSummary(summary *analyzer.Summary) error {
	days := make([]jsonDay, 0, len(summary.Days))
	for _, day := range summary.Days {
		days = append(days, jsonDay{
			Date:            day.Date.String(),
			DurationSeconds: seconds(day.Duration),
			Descriptions:    day.Descriptions,
		})
	}
	return f.encode(days)
}

// FormatBinnacle writes the month/day/category report as JSON.
func (f *JSONFormatter) FormatBinnacle(binnacle *analyzer.Binnacle) error {
	months := make([]jsonBinnacleMonth, 0, len(binnacle.Months))
	for _, month := range binnacle.Months {
		out := jsonBinnacleMonth{
			Year:            month.Month.Year,
			Month:           int(month.Month.Month),
			DurationSeconds: seconds(month.Duration),
		}
		for _, day := range month.Days {
			outDay := jsonBinnacleDay{Date: day.Date.String()}
			for _, category := range day.Categories {
				outDay.Categories = append(outDay.Categories, jsonCategory{
					Category:        category.Category,
					DurationSeconds: seconds(category.Duration),
					Subjects:        category.Subjects,
				})
			}
			out.Days = append(out.Days, outDay)
		}
		months = append(months, out)
	}
	return f.encode(months)
}

// FormatHistogram writes the workload histogram as JSON.
func (f *JSONFormatter) FormatHistogram(histogram *analyzer.Histogram) error {
	out := jsonHistogram{
		SlotWidthSeconds: seconds(histogram.SlotWidth),
		TotalSeconds:     seconds(histogram.Total),
		Slots:            make([]jsonSlot, 0, len(histogram.Slots)),
	}
	for _, slot := range histogram.Slots {
		out.Slots = append(out.Slots, jsonSlot{
			Start:           clockLabel(slot.Start),
			DurationSeconds: seconds(slot.Duration),
			Fraction:        slot.Fraction,
		})
	}
	return f.encode(out)
}
