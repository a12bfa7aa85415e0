package recorder

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clockin-tool/clockin/internal/core/session"
	"github.com/clockin-tool/clockin/internal/data/parser"
)

func newLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".clockin")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	return path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestMarkerFormat(t *testing.T) {
	path := newLog(t)
	at := time.Date(2024, 5, 20, 9, 0, 0, 500_000_000, time.UTC)

	require.NoError(t, AppendStart(path, at))
	require.NoError(t, AppendEnd(path, at.Add(time.Hour)))

	assert.Equal(t,
		"%-2024-05-20T09:00:00Z\n%+2024-05-20T10:00:00Z\n\n",
		readLog(t, path))
}

func TestRecordWritesWellFormedSession(t *testing.T) {
	path := newLog(t)
	start := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	instants := []time.Time{start, start.Add(2 * time.Hour)}
	now := func() time.Time {
		at := instants[0]
		if len(instants) > 1 {
			instants = instants[1:]
		}
		return at
	}

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	input := strings.NewReader("proj: fix bug\nmore detail\n")
	require.NoError(t, r.Record(context.Background(), input, now))

	sessions, err := parser.ParseFile(path, session.SystemClock{})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "proj: fix bug\nmore detail", sessions[0].Description)
	assert.Equal(t, 2*time.Hour, sessions[0].Duration())
	assert.False(t, sessions[0].Open)
}

func TestRecordClosesSessionOnCancellation(t *testing.T) {
	path := newLog(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	// A reader that never delivers a line; only cancellation ends it.
	blocked, w, err := os.Pipe()
	require.NoError(t, err)
	defer w.Close()
	defer blocked.Close()

	now := func() time.Time { return time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC) }
	require.NoError(t, r.Record(ctx, blocked, now))

	content := readLog(t, path)
	assert.True(t, strings.HasPrefix(content, "%-2024-05-20T09:00:00Z\n"))
	assert.Contains(t, content, "%+2024-05-20T09:00:00Z\n")
}

func TestAppendOnly(t *testing.T) {
	path := newLog(t)
	require.NoError(t, os.WriteFile(path, []byte("existing line\n"), 0644))

	at := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	require.NoError(t, AppendStart(path, at))

	assert.True(t, strings.HasPrefix(readLog(t, path), "existing line\n%-"))
}

func TestOpenRejectsSecondRecorder(t *testing.T) {
	path := newLog(t)

	first, err := Open(path)
	require.NoError(t, err)
	defer first.Close()

	_, err = Open(path)
	assert.Error(t, err)
}

func TestOpenMissingLog(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
