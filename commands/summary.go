package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clockin-tool/clockin/internal/presentation/formatter"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Per-day durations and descriptions, grouped by week",
	RunE:  runSummary,
}

func init() {
	addOutputFlag(summaryCmd)
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	path, err := resolveLog()
	if err != nil {
		return err
	}
	a, _, err := newAnalyzer()
	if err != nil {
		return err
	}

	summary, err := a.Summary(path)
	if err != nil {
		return err
	}

	switch outputFormat {
	case "json":
		return formatter.NewJSONFormatter(os.Stdout).FormatSummary(summary)
	case "table":
		return formatter.NewSummaryFormatter(os.Stdout).Format(summary)
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
}
