package session

import "github.com/clockin-tool/clockin/internal/core/calendar"

// SplitDays cuts the session at every local midnight strictly between
// Start and End, one sub-session per calendar day touched. Midnights are
// taken in the location the session is projected into, so this is called
// after In.
//
// Intervals are half-open [start, end): a session ending exactly at
// midnight produces no zero-length slice for the following day, and a
// zero-length session produces nothing. The result ascends by date, which
// the summary fold relies on.
func (s Session) SplitDays() []Session {
	loc := s.Start.Location()

	var parts []Session
	cur := s.Start
	for cur.Before(s.End) {
		next := calendar.DateOf(cur).AddDays(1).Midnight(loc)
		if !next.After(cur) {
			// Degenerate zone transition at midnight; never splits.
			next = s.End
		}

		end := s.End
		if next.Before(end) {
			end = next
		}
		parts = append(parts, Session{
			Start:       cur,
			End:         end,
			Description: s.Description,
			Open:        s.Open,
		})
		cur = next
	}
	return parts
}
