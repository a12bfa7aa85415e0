package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.February, 29), d)

	_, err = ParseDate("2023-02-29")
	assert.Error(t, err)

	_, err = ParseDate("20/05/2024")
	assert.Error(t, err)
}

func TestAddDaysNormalizes(t *testing.T) {
	assert.Equal(t, date(2024, time.March, 1), date(2024, time.February, 29).AddDays(1))
	assert.Equal(t, date(2023, time.December, 31), date(2024, time.January, 1).AddDays(-1))
}

func TestDateOrdering(t *testing.T) {
	assert.True(t, date(2024, time.January, 31).Before(date(2024, time.February, 1)))
	assert.True(t, date(2024, time.February, 1).After(date(2024, time.January, 31)))
	assert.False(t, date(2024, time.March, 5).Before(date(2024, time.March, 5)))
}

func TestWeekIdentity(t *testing.T) {
	// 2024-05-20 is a Monday.
	monday := date(2024, time.May, 20)
	sunday := date(2024, time.May, 26)
	nextMonday := date(2024, time.May, 27)

	assert.Equal(t, WeekOf(monday), WeekOf(sunday))
	assert.Equal(t, monday, WeekOf(sunday).Monday())
	assert.Equal(t, sunday, WeekOf(monday).Sunday())

	// Dates in different ISO weeks never compare equal.
	assert.NotEqual(t, WeekOf(monday), WeekOf(nextMonday))
	assert.True(t, WeekOf(monday).Before(WeekOf(nextMonday)))
}

func TestWeekOfSameMondayAcrossTheWeek(t *testing.T) {
	monday := date(2024, time.May, 20)
	for offset := 0; offset < 7; offset++ {
		assert.Equal(t, WeekOf(monday), WeekOf(monday.AddDays(offset)), "offset %d", offset)
	}
	assert.NotEqual(t, WeekOf(monday), WeekOf(monday.AddDays(7)))
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		month Month
		first Date
		last  Date
	}{
		{Month{2024, time.February}, date(2024, time.February, 1), date(2024, time.February, 29)},
		{Month{2023, time.February}, date(2023, time.February, 1), date(2023, time.February, 28)},
		{Month{2024, time.December}, date(2024, time.December, 1), date(2024, time.December, 31)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.first, tt.month.First())
		assert.Equal(t, tt.last, tt.month.Last())
	}
}

func TestRangeContains(t *testing.T) {
	from := date(2024, time.May, 1)
	to := date(2024, time.May, 31)

	bounded := Between(from, to)
	assert.True(t, bounded.Contains(from))
	assert.True(t, bounded.Contains(to))
	assert.True(t, bounded.Contains(date(2024, time.May, 15)))
	assert.False(t, bounded.Contains(date(2024, time.April, 30)))
	assert.False(t, bounded.Contains(date(2024, time.June, 1)))

	assert.True(t, Unbounded().Contains(date(1970, time.January, 1)))

	lowerOnly := Range{From: &from}
	assert.True(t, lowerOnly.Contains(date(2030, time.January, 1)))
	assert.False(t, lowerOnly.Contains(date(2024, time.April, 30)))
}

func TestWeekAndMonthRanges(t *testing.T) {
	w := WeekOf(date(2024, time.May, 22))
	wr := WeekRange(w)
	assert.Equal(t, date(2024, time.May, 20), *wr.From)
	assert.Equal(t, date(2024, time.May, 26), *wr.To)

	mr := MonthRange(Month{2024, time.May})
	assert.Equal(t, date(2024, time.May, 1), *mr.From)
	assert.Equal(t, date(2024, time.May, 31), *mr.To)
}
