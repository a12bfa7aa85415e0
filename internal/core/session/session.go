// Package session defines the work-session model shared by the parser,
// the analyzers and the reports.
package session

import (
	"time"

	"github.com/clockin-tool/clockin/internal/core/calendar"
)

// Session is one clock-in/clock-out interval. Start and End are absolute
// instants; End is exclusive. For an open session (no end marker in the
// log yet) End holds the read-time "now" and Open is true.
//
// Invariant: Start is never after End.
type Session struct {
	Start       time.Time
	End         time.Time
	Description string
	Open        bool
}

// Duration returns the elapsed time between the session's instants.
// It is always the instant delta, regardless of what location the
// session has been projected into.
func (s Session) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// In projects the session into the wall-clock reading of loc. The
// underlying instants, and therefore Duration, are unchanged.
func (s Session) In(loc *time.Location) Session {
	s.Start = s.Start.In(loc)
	s.End = s.End.In(loc)
	return s
}

// Date returns the civil date the session starts on, in the location it
// is currently projected into.
func (s Session) Date() calendar.Date {
	return calendar.DateOf(s.Start)
}
