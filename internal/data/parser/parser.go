// Package parser reads the append-only clockin log and turns marker
// lines plus free text into Sessions.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/clockin-tool/clockin/internal/core/session"
	"github.com/clockin-tool/clockin/internal/util"
)

const (
	startPrefix = "%-"
	endPrefix   = "%+"
)

// SessionReader is a lazy, forward-only reader of Sessions in file order.
// The log is append-only, so file order is chronological. It is not
// restartable; create a new reader to re-read.
type SessionReader struct {
	scanner *bufio.Scanner
	clock   session.Clock
	line    int
	err     error
}

// NewReader creates a SessionReader over r. clock supplies the end time
// of a trailing open session; it is consulted fresh on every read and
// never cached.
func NewReader(r io.Reader, clock session.Clock) *SessionReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	return &SessionReader{
		scanner: scanner,
		clock:   clock,
	}
}

// parseMarker extracts the timestamp of a marker line, or ok=false if the
// line does not carry the prefix. A marker line with a bad timestamp is a
// fatal parse failure.
func (r *SessionReader) parseMarker(line, prefix string) (time.Time, bool, error) {
	if !strings.HasPrefix(line, prefix) {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(time.RFC3339, line[len(prefix):])
	if err != nil {
		return time.Time{}, false, fmt.Errorf("line %d: malformed timestamp in marker %q: %w", r.line, line, err)
	}
	return t, true, nil
}

func (r *SessionReader) scan() (string, bool) {
	if !r.scanner.Scan() {
		return "", false
	}
	r.line++
	return r.scanner.Text(), true
}

// Next returns the next session in the log. It returns io.EOF when the
// input is exhausted. Any other error is fatal and aborts the remainder
// of the read; there is no per-session recovery.
func (r *SessionReader) Next() (session.Session, error) {
	if r.err != nil {
		return session.Session{}, r.err
	}

	// Skip anything before the next start marker.
	var start time.Time
	for {
		line, ok := r.scan()
		if !ok {
			return session.Session{}, r.finish(io.EOF)
		}
		t, isStart, err := r.parseMarker(line, startPrefix)
		if err != nil {
			return session.Session{}, r.finish(err)
		}
		if isStart {
			start = t
			break
		}
	}

	// Accumulate description lines until the end marker. If the input
	// ends first the session is open and its end is "now".
	var description strings.Builder
	end := r.clock.Now()
	open := true
	for {
		line, ok := r.scan()
		if !ok {
			break
		}
		t, isEnd, err := r.parseMarker(line, endPrefix)
		if err != nil {
			return session.Session{}, r.finish(err)
		}
		if isEnd {
			end = t
			open = false
			break
		}
		description.WriteString(line)
		description.WriteByte('\n')
	}

	return session.Session{
		Start:       start,
		End:         end,
		Description: strings.TrimRightFunc(description.String(), isSpace),
		Open:        open,
	}, nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// finish records a terminal condition, folding in any scanner I/O error.
func (r *SessionReader) finish(err error) error {
	if scanErr := r.scanner.Err(); scanErr != nil {
		err = scanErr
	}
	r.err = err
	return err
}

// ReadAll drains the reader.
func (r *SessionReader) ReadAll() ([]session.Session, error) {
	var sessions []session.Session
	for {
		s, err := r.Next()
		if err == io.EOF {
			return sessions, nil
		}
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
}

// ParseFile reads every session from the log at path.
func ParseFile(path string, clock session.Clock) ([]session.Session, error) {
	util.LogDebug(fmt.Sprintf("Parsing clockin log: %s", path))

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sessions, err := NewReader(file, clock).ReadAll()
	if err != nil {
		util.LogDebug(fmt.Sprintf("Parse failed: %s - %v", path, err))
		return nil, err
	}
	util.LogDebug(fmt.Sprintf("Parsed %d sessions from %s", len(sessions), path))
	return sessions, nil
}
