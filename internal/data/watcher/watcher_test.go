package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherNotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".clockin")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("%-2024-05-20T09:00:00Z\n"), 0644))

	select {
	case _, ok := <-w.Changes():
		assert.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification received")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".clockin")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))

	select {
	case <-w.Changes():
		t.Fatal("unexpected notification for a sibling file")
	case <-time.After(3 * DebounceInterval):
	}
}

func TestWatcherClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".clockin")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	w, err := New(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	select {
	case _, ok := <-w.Changes():
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("changes channel did not close")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", ".clockin"))
	assert.Error(t, err)
}
