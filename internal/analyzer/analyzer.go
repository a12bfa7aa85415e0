// Package analyzer turns parsed sessions into the report aggregates:
// the per-day summary, the month/day/category binnacle, the time-of-day
// workload histogram and worked-time queries.
package analyzer

import (
	"fmt"
	"time"

	"github.com/clockin-tool/clockin/internal/core/calendar"
	"github.com/clockin-tool/clockin/internal/core/session"
	"github.com/clockin-tool/clockin/internal/data/parser"
	"github.com/clockin-tool/clockin/internal/util"
)

// Analyzer runs the parse → project → split pipeline over the log and
// feeds the aggregates. Everything is recomputed from the full log on
// every call; nothing is cached between runs.
type Analyzer struct {
	location *time.Location
	clock    session.Clock
}

// New creates an Analyzer projecting into loc. clock closes a trailing
// open session at read time.
func New(loc *time.Location, clock session.Clock) *Analyzer {
	return &Analyzer{
		location: loc,
		clock:    clock,
	}
}

// Sessions parses the log and projects every session into the analyzer's
// location.
func (a *Analyzer) Sessions(path string) ([]session.Session, error) {
	sessions, err := parser.ParseFile(path, a.clock)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		sessions[i] = sessions[i].In(a.location)
	}
	return sessions, nil
}

// SplitSessions parses, projects and day-splits the log, keeping only
// sub-sessions whose date falls in r.
func (a *Analyzer) SplitSessions(path string, r calendar.Range) ([]session.Session, error) {
	sessions, err := a.Sessions(path)
	if err != nil {
		return nil, err
	}

	var parts []session.Session
	for _, s := range sessions {
		for _, part := range s.SplitDays() {
			if r.Contains(part.Date()) {
				parts = append(parts, part)
			}
		}
	}
	util.LogDebug(fmt.Sprintf("Split %d sessions into %d in-range day slices", len(sessions), len(parts)))
	return parts, nil
}

// Summary builds the ordered per-day summary for the whole log.
func (a *Analyzer) Summary(path string) (*Summary, error) {
	parts, err := a.SplitSessions(path, calendar.Unbounded())
	if err != nil {
		return nil, err
	}
	return Summarize(parts)
}

// Binnacle builds the month/day/category report over r.
func (a *Analyzer) Binnacle(path string, r calendar.Range) (*Binnacle, error) {
	parts, err := a.SplitSessions(path, r)
	if err != nil {
		return nil, err
	}
	return BuildBinnacle(parts)
}

// Histogram builds the workload-shape histogram over r. Open sessions
// are excluded: their end is a moving "now", not a worked boundary.
func (a *Analyzer) Histogram(path string, r calendar.Range, slotWidth time.Duration) (*Histogram, error) {
	parts, err := a.SplitSessions(path, r)
	if err != nil {
		return nil, err
	}
	finished := parts[:0]
	for _, part := range parts {
		if !part.Open {
			finished = append(finished, part)
		}
	}
	return BuildHistogram(finished, slotWidth)
}

// Worked sums worked time over r.
func (a *Analyzer) Worked(path string, r calendar.Range) (time.Duration, error) {
	parts, err := a.SplitSessions(path, r)
	if err != nil {
		return 0, err
	}
	summary, err := Summarize(parts)
	if err != nil {
		return 0, err
	}
	return summary.Duration(r), nil
}

// LastSession returns the most recent session in the log, or ok=false
// for an empty log.
func (a *Analyzer) LastSession(path string) (session.Session, bool, error) {
	sessions, err := a.Sessions(path)
	if err != nil {
		return session.Session{}, false, err
	}
	if len(sessions) == 0 {
		return session.Session{}, false, nil
	}
	return sessions[len(sessions)-1], true, nil
}
