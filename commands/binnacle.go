package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clockin-tool/clockin/internal/presentation/formatter"
)

var (
	binnacleFrom string
	binnacleTo   string

	binnacleCmd = &cobra.Command{
		Use:     "binnacle",
		Aliases: []string{"bitacora"},
		Short:   "Monthly report of days, categories and tasks",
		RunE:    runBinnacle,
	}
)

func init() {
	binnacleCmd.Flags().StringVarP(&binnacleFrom, "from", "f", "",
		"Lower date bound, inclusive (YYYY-MM-DD; empty = unbounded)")
	binnacleCmd.Flags().StringVarP(&binnacleTo, "to", "t", "",
		"Upper date bound, inclusive (YYYY-MM-DD; empty = unbounded)")
	addOutputFlag(binnacleCmd)
	rootCmd.AddCommand(binnacleCmd)
}

func runBinnacle(cmd *cobra.Command, args []string) error {
	path, err := resolveLog()
	if err != nil {
		return err
	}
	a, loc, err := newAnalyzer()
	if err != nil {
		return err
	}
	dateRange, err := parseRange(binnacleFrom, binnacleTo)
	if err != nil {
		return err
	}

	binnacle, err := a.Binnacle(path, dateRange)
	if err != nil {
		return err
	}

	switch outputFormat {
	case "json":
		return formatter.NewJSONFormatter(os.Stdout).FormatBinnacle(binnacle)
	case "table":
		return formatter.NewBinnacleFormatter(os.Stdout, today(loc)).Format(binnacle)
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
}
