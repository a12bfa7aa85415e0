package calendar

// Range is an inclusive date range. A nil bound is unbounded on that side.
type Range struct {
	From *Date
	To   *Date
}

// Unbounded returns the range covering all dates.
func Unbounded() Range {
	return Range{}
}

// Between returns the inclusive range [from, to].
func Between(from, to Date) Range {
	return Range{From: &from, To: &to}
}

// SingleDay returns the range covering exactly d.
func SingleDay(d Date) Range {
	return Between(d, d)
}

// WeekRange returns the inclusive range [Monday, Sunday] of w.
func WeekRange(w Week) Range {
	return Between(w.Monday(), w.Sunday())
}

// MonthRange returns the inclusive range [first, last day] of m.
func MonthRange(m Month) Range {
	return Between(m.First(), m.Last())
}

// Contains reports whether d falls within the range.
func (r Range) Contains(d Date) bool {
	if r.From != nil && d.Before(*r.From) {
		return false
	}
	if r.To != nil && d.After(*r.To) {
		return false
	}
	return true
}
