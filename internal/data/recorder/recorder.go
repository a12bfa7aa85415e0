// Package recorder appends session markers and description lines to the
// clockin log. The log is append-only: existing bytes are never touched.
package recorder

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/clockin-tool/clockin/internal/util"
)

// Recorder holds the log open for appending. While open it keeps an
// exclusive flock on the file so two recorders cannot interleave
// partial lines; readers are unaffected.
type Recorder struct {
	file *os.File
}

// Open opens the log for appending and takes the lock.
func Open(path string) (*Recorder, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening clockin log: %w", err)
	}
	if err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		file.Close()
		return nil, fmt.Errorf("log %s is locked by another recorder: %w", path, err)
	}
	return &Recorder{file: file}, nil
}

func formatMarker(prefix string, t time.Time) string {
	return prefix + t.Truncate(time.Second).Format(time.RFC3339) + "\n"
}

func (r *Recorder) write(s string) error {
	_, err := r.file.WriteString(s)
	return err
}

// Start appends a session start marker.
func (r *Recorder) Start(t time.Time) error {
	return r.write(formatMarker("%-", t))
}

// Line appends one description line.
func (r *Recorder) Line(line string) error {
	return r.write(line + "\n")
}

// End appends a session end marker followed by the conventional blank
// separator line.
func (r *Recorder) End(t time.Time) error {
	return r.write(formatMarker("%+", t) + "\n")
}

// Close releases the lock and closes the log.
func (r *Recorder) Close() error {
	return r.file.Close()
}

// Record runs one interactive session: start marker now, description
// lines streamed from input until EOF or ctx cancellation, then the end
// marker. The end marker is written even when cancelled, so an
// interrupted recording still produces a well-formed closed session.
func (r *Recorder) Record(ctx context.Context, input io.Reader, now func() time.Time) error {
	if err := r.Start(now()); err != nil {
		return fmt.Errorf("writing start marker: %w", err)
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

loop:
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("reading description: %w", err)
					}
				default:
				}
				break loop
			}
			if err := r.Line(line); err != nil {
				return fmt.Errorf("writing description: %w", err)
			}
		case <-ctx.Done():
			util.LogDebug("Recording cancelled, closing session")
			break loop
		}
	}

	if err := r.End(now()); err != nil {
		return fmt.Errorf("writing end marker: %w", err)
	}
	return nil
}

// AppendStart opens the log, writes a lone start marker and closes it
// again. Used for detached recording where the description and the end
// marker arrive later, by hand or via stop.
func AppendStart(path string, t time.Time) error {
	r, err := Open(path)
	if err != nil {
		return err
	}
	defer r.Close()
	return r.Start(t)
}

// AppendEnd closes a detached recording with an end marker.
func AppendEnd(path string, t time.Time) error {
	r, err := Open(path)
	if err != nil {
		return err
	}
	defer r.Close()
	return r.End(t)
}
