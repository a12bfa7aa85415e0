package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clockin-tool/clockin/internal/core/calendar"
	"github.com/clockin-tool/clockin/internal/util"
)

var (
	workedToday bool
	workedLast  bool
	workedFrom  string
	workedTo    string

	workedCmd = &cobra.Command{
		Use:   "worked",
		Short: "Total worked time for today, a date range, or the last session",
		RunE:  runWorked,
	}
)

func init() {
	workedCmd.Flags().BoolVar(&workedToday, "today", false,
		"Sum today's sessions (default when no other selector is given)")
	workedCmd.Flags().BoolVar(&workedLast, "last", false,
		"Duration of the most recent session only")
	workedCmd.Flags().StringVar(&workedFrom, "from", "",
		"Lower date bound, inclusive (YYYY-MM-DD; empty = unbounded)")
	workedCmd.Flags().StringVar(&workedTo, "to", "",
		"Upper date bound, inclusive (YYYY-MM-DD; empty = unbounded)")
	rootCmd.AddCommand(workedCmd)
}

func runWorked(cmd *cobra.Command, args []string) error {
	if workedLast && (workedToday || workedFrom != "" || workedTo != "") {
		return fmt.Errorf("--last cannot be combined with other selectors")
	}

	path, err := resolveLog()
	if err != nil {
		return err
	}
	a, loc, err := newAnalyzer()
	if err != nil {
		return err
	}

	if workedLast {
		last, ok, err := a.LastSession(path)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no sessions recorded")
		}
		fmt.Println(util.FormatDurationUncertain(last.Duration(), !last.Open))
		return nil
	}

	dateRange, err := parseRange(workedFrom, workedTo)
	if err != nil {
		return err
	}
	if workedFrom == "" && workedTo == "" {
		dateRange = calendar.SingleDay(today(loc))
	}

	worked, err := a.Worked(path, dateRange)
	if err != nil {
		return err
	}
	fmt.Println(util.FormatDuration(worked))
	return nil
}
