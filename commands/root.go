// Package commands wires the clockin CLI: recording commands that
// append to the log and report commands that recompute from it.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/clockin-tool/clockin/internal/analyzer"
	"github.com/clockin-tool/clockin/internal/core/calendar"
	"github.com/clockin-tool/clockin/internal/core/session"
	"github.com/clockin-tool/clockin/internal/data/logfile"
	"github.com/clockin-tool/clockin/internal/util"
)

var (
	// Logging related
	debug bool

	// Global report configuration
	timezone     string
	logPathFlag  string
	outputFormat string

	rootCmd = &cobra.Command{
		Use:   "clockin",
		Short: "Append-only work-session tracker",
		Long: `clockin records work sessions in a flat, append-only text log and
turns them into daily, weekly, monthly and categorized time reports.

A session is delimited by marker lines: %- plus an RFC 3339 timestamp
starts it, %+ plus a timestamp ends it, and everything in between is its
description. A missing end marker means the session is still open.

Examples:
  clockin link myproject        # create and link a log for this directory
  clockin in                    # record a session interactively
  clockin summary               # per-day and per-week report
  clockin binnacle --from 2024-05-01 --to 2024-05-31
  clockin histogram --slot 30m  # time-of-day workload shape
  clockin worked --today        # total worked time today`,
		SilenceUsage: true,
	}
)

const defaultAppLog = "~/.cache/clockin/app.log"

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Local",
		"Timezone for bucketing and reports (e.g. UTC, Europe/Madrid)")
	rootCmd.PersistentFlags().StringVar(&logPathFlag, "file", "",
		"Clockin log path (overrides .clockin discovery)")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logLevel := "info"
		if debug {
			logLevel = "debug"
		}
		util.InitLogger(logLevel, expandPath(defaultAppLog), debug)
	}
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// addOutputFlag registers --output on report commands.
func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json)")
}

// resolveLog returns the log path from --file or .clockin discovery.
func resolveLog() (string, error) {
	if logPathFlag != "" {
		return expandPath(logPathFlag), nil
	}
	return logfile.Find()
}

// location resolves the --timezone flag.
func location() (*time.Location, error) {
	return util.ResolveLocation(timezone)
}

// newAnalyzer builds the pipeline for the configured timezone.
func newAnalyzer() (*analyzer.Analyzer, *time.Location, error) {
	loc, err := location()
	if err != nil {
		return nil, nil, err
	}
	return analyzer.New(loc, session.SystemClock{}), loc, nil
}

// today returns the current civil date in loc.
func today(loc *time.Location) calendar.Date {
	return calendar.DateOf(time.Now().In(loc))
}

// parseRange turns optional --from/--to values into a calendar.Range.
func parseRange(from, to string) (calendar.Range, error) {
	var r calendar.Range
	if from != "" {
		d, err := calendar.ParseDate(from)
		if err != nil {
			return r, fmt.Errorf("--from: %w", err)
		}
		r.From = &d
	}
	if to != "" {
		d, err := calendar.ParseDate(to)
		if err != nil {
			return r, fmt.Errorf("--to: %w", err)
		}
		r.To = &d
	}
	return r, nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	return path
}
