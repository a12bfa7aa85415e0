package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clockin-tool/clockin/internal/core/calendar"
	"github.com/clockin-tool/clockin/internal/core/session"
)

func dt(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
}

func part(start, end time.Time, description string) session.Session {
	return session.Session{Start: start, End: end, Description: description}
}

func date(year int, month time.Month, day int) calendar.Date {
	return calendar.Date{Year: year, Month: month, Day: day}
}

func TestSummarizeGroupsByDay(t *testing.T) {
	parts := []session.Session{
		part(dt(2024, 5, 20, 9, 0, 0), dt(2024, 5, 20, 11, 0, 0), "proj: review"),
		part(dt(2024, 5, 20, 13, 0, 0), dt(2024, 5, 20, 14, 30, 0), "proj: review"),
		part(dt(2024, 5, 21, 10, 0, 0), dt(2024, 5, 21, 12, 0, 0), "other work"),
	}

	summary, err := Summarize(parts)
	require.NoError(t, err)
	require.Len(t, summary.Days, 2)

	assert.Equal(t, date(2024, time.May, 20), summary.Days[0].Date)
	assert.Equal(t, 3*time.Hour+30*time.Minute, summary.Days[0].Duration)
	assert.Equal(t, []string{"proj: review"}, summary.Days[0].Descriptions)

	assert.Equal(t, date(2024, time.May, 21), summary.Days[1].Date)
	assert.Equal(t, 2*time.Hour, summary.Days[1].Duration)
}

func TestSummarizeSkipsEmptyDescriptions(t *testing.T) {
	parts := []session.Session{
		part(dt(2024, 5, 20, 9, 0, 0), dt(2024, 5, 20, 10, 0, 0), ""),
		part(dt(2024, 5, 20, 10, 0, 0), dt(2024, 5, 20, 11, 0, 0), "real work"),
	}

	summary, err := Summarize(parts)
	require.NoError(t, err)
	require.Len(t, summary.Days, 1)
	assert.Equal(t, []string{"real work"}, summary.Days[0].Descriptions)
}

func TestSummarizeSortsDescriptions(t *testing.T) {
	parts := []session.Session{
		part(dt(2024, 5, 20, 9, 0, 0), dt(2024, 5, 20, 10, 0, 0), "zebra"),
		part(dt(2024, 5, 20, 10, 0, 0), dt(2024, 5, 20, 11, 0, 0), "apple"),
		part(dt(2024, 5, 20, 11, 0, 0), dt(2024, 5, 20, 12, 0, 0), "zebra"),
	}

	summary, err := Summarize(parts)
	require.NoError(t, err)
	require.Len(t, summary.Days, 1)
	assert.Equal(t, []string{"apple", "zebra"}, summary.Days[0].Descriptions)
}

func TestSummarizeSplitThenSumIsLossless(t *testing.T) {
	sessions := []session.Session{
		part(dt(2024, 5, 18, 22, 0, 0), dt(2024, 5, 19, 2, 0, 0), "night shift"),
		part(dt(2024, 5, 19, 9, 0, 0), dt(2024, 5, 21, 17, 0, 0), "marathon"),
		part(dt(2024, 5, 21, 18, 0, 0), dt(2024, 5, 21, 18, 45, 0), "wrap up"),
	}

	var want time.Duration
	var parts []session.Session
	for _, s := range sessions {
		want += s.Duration()
		parts = append(parts, s.SplitDays()...)
	}

	summary, err := Summarize(parts)
	require.NoError(t, err)
	assert.Equal(t, want, summary.Duration(calendar.Unbounded()))
}

func TestSummarizeRejectsDateRegression(t *testing.T) {
	parts := []session.Session{
		part(dt(2024, 5, 21, 9, 0, 0), dt(2024, 5, 21, 10, 0, 0), "later"),
		part(dt(2024, 5, 20, 9, 0, 0), dt(2024, 5, 20, 10, 0, 0), "earlier"),
	}

	_, err := Summarize(parts)
	assert.ErrorContains(t, err, "out of order")
}

func TestSummarizeEmptyInput(t *testing.T) {
	summary, err := Summarize(nil)
	require.NoError(t, err)
	assert.Empty(t, summary.Days)
	assert.Equal(t, time.Duration(0), summary.Duration(calendar.Unbounded()))
}

func TestDurationRangeQueries(t *testing.T) {
	parts := []session.Session{
		// Mon 2024-05-20 through Wed, then the following Monday.
		part(dt(2024, 5, 20, 9, 0, 0), dt(2024, 5, 20, 10, 0, 0), "a"),
		part(dt(2024, 5, 21, 9, 0, 0), dt(2024, 5, 21, 11, 0, 0), "b"),
		part(dt(2024, 5, 22, 9, 0, 0), dt(2024, 5, 22, 12, 0, 0), "c"),
		part(dt(2024, 5, 27, 9, 0, 0), dt(2024, 5, 27, 13, 0, 0), "d"),
		part(dt(2024, 6, 3, 9, 0, 0), dt(2024, 6, 3, 14, 0, 0), "e"),
	}

	summary, err := Summarize(parts)
	require.NoError(t, err)

	assert.Equal(t, 15*time.Hour, summary.Duration(calendar.Unbounded()))
	assert.Equal(t, 6*time.Hour,
		summary.Duration(calendar.Between(date(2024, time.May, 20), date(2024, time.May, 22))))

	from := date(2024, time.May, 27)
	assert.Equal(t, 9*time.Hour, summary.Duration(calendar.Range{From: &from}))

	week := calendar.WeekOf(date(2024, time.May, 22))
	assert.Equal(t, 6*time.Hour, summary.WeekDuration(week))
	assert.Equal(t, 4*time.Hour, summary.WeekDuration(calendar.WeekOf(date(2024, time.May, 27))))

	assert.Equal(t, 10*time.Hour, summary.MonthDuration(calendar.Month{Year: 2024, Month: time.May}))
	assert.Equal(t, 5*time.Hour, summary.MonthDuration(calendar.Month{Year: 2024, Month: time.June}))
}
