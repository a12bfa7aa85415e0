package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/clockin-tool/clockin/internal/presentation/formatter"
)

var (
	histogramSlot time.Duration
	histogramFrom string
	histogramTo   string

	histogramCmd = &cobra.Command{
		Use:   "histogram",
		Short: "Time-of-day workload shape across all recorded days",
		Long: `histogram superposes every day in the range onto one 24-hour axis
and shows how much worked time falls into each fixed-width slot, which
surfaces the typical shape of a working day.`,
		RunE: runHistogram,
	}
)

func init() {
	histogramCmd.Flags().DurationVarP(&histogramSlot, "slot", "s", time.Hour,
		"Slot width; must evenly divide 24h (e.g. 30m, 1h, 2h)")
	histogramCmd.Flags().StringVarP(&histogramFrom, "from", "f", "",
		"Lower date bound, inclusive (YYYY-MM-DD; empty = unbounded)")
	histogramCmd.Flags().StringVarP(&histogramTo, "to", "t", "",
		"Upper date bound, inclusive (YYYY-MM-DD; empty = unbounded)")
	addOutputFlag(histogramCmd)
	rootCmd.AddCommand(histogramCmd)
}

func runHistogram(cmd *cobra.Command, args []string) error {
	path, err := resolveLog()
	if err != nil {
		return err
	}
	a, _, err := newAnalyzer()
	if err != nil {
		return err
	}
	dateRange, err := parseRange(histogramFrom, histogramTo)
	if err != nil {
		return err
	}

	histogram, err := a.Histogram(path, dateRange, histogramSlot)
	if err != nil {
		return err
	}

	switch outputFormat {
	case "json":
		return formatter.NewJSONFormatter(os.Stdout).FormatHistogram(histogram)
	case "table":
		return formatter.NewHistogramFormatter(os.Stdout, formatter.TerminalWidth()).Format(histogram)
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
}
