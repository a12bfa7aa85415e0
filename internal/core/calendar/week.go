package calendar

// Week identifies a Monday-to-Sunday calendar week solely by the date of
// its Monday. Two Week values are equal iff their Mondays match, so Weeks
// are safe to use as map keys and to compare with ==.
type Week struct {
	monday Date
}

// WeekOf returns the week containing d.
func WeekOf(d Date) Week {
	// time.Weekday numbers Sunday as 0; shift so Monday is 0.
	offset := (int(d.Weekday()) + 6) % 7
	return Week{monday: d.AddDays(-offset)}
}

// Monday returns the first day of the week.
func (w Week) Monday() Date {
	return w.monday
}

// Sunday returns the last day of the week.
func (w Week) Sunday() Date {
	return w.monday.AddDays(6)
}

// Before reports whether w starts earlier than other.
func (w Week) Before(other Week) bool {
	return w.monday.Before(other.monday)
}

func (w Week) String() string {
	return "week of " + w.monday.String()
}
