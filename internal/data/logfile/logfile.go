// Package logfile resolves which .clockin log a command operates on.
//
// Resolution order: the CLOCKIN_PROJECT environment variable (a log name
// inside the data directory), then an upward search for a .clockin file
// from the working directory. Link creates a named log in the data
// directory and symlinks .clockin to it.
package logfile

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	linkName   = ".clockin"
	projectEnv = "CLOCKIN_PROJECT"
	dataSubdir = "clockin"
)

// DataDir returns the directory holding named logs, creating it if
// needed: $XDG_DATA_HOME/clockin, or ~/.local/share/clockin.
func DataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving data directory: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}

	dir := filepath.Join(base, dataSubdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}
	return dir, nil
}

// findUpward walks from dir toward the filesystem root looking for a
// .clockin entry.
func findUpward(dir string) (string, bool) {
	for {
		candidate := filepath.Join(dir, linkName)
		if _, err := os.Lstat(candidate); err == nil {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Find resolves the active log path. CLOCKIN_PROJECT wins when set; a
// project that does not exist in the data directory is an error, not a
// fallthrough.
func Find() (string, error) {
	if project := os.Getenv(projectEnv); project != "" {
		dir, err := DataDir()
		if err != nil {
			return "", err
		}
		path := filepath.Join(dir, project)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("the %s project %q does not exist: %w", projectEnv, project, err)
		}
		return path, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if path, ok := findUpward(wd); ok {
		return path, nil
	}
	return "", fmt.Errorf("%s file not found (run 'clockin link <name>' first)", linkName)
}

// Link creates the named log in the data directory if it does not exist
// and symlinks .clockin in the current directory to it. Existing log
// content is preserved.
func Link(name string) (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}

	target := filepath.Join(dir, name)
	file, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("creating log %q: %w", name, err)
	}
	file.Close()

	if err := os.Symlink(target, linkName); err != nil {
		return "", fmt.Errorf("linking %s: %w", linkName, err)
	}
	return linkName, nil
}
