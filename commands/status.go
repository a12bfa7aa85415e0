package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/clockin-tool/clockin/internal/analyzer"
	"github.com/clockin-tool/clockin/internal/data/watcher"
)

var (
	statusWatch bool

	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Report whether the last session is started or finished",
		RunE:  runStatus,
	}
)

func init() {
	statusCmd.Flags().BoolVarP(&statusWatch, "watch", "w", false,
		"Keep watching the log and reprint the status on every change")
	rootCmd.AddCommand(statusCmd)
}

func printStatus(a *analyzer.Analyzer, path string) error {
	last, ok, err := a.LastSession(path)
	switch {
	case err != nil:
		return err
	case ok && last.Open:
		fmt.Println("started")
	default:
		fmt.Println("finished")
	}
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	path, err := resolveLog()
	if err != nil {
		return err
	}
	a, _, err := newAnalyzer()
	if err != nil {
		return err
	}

	if err := printStatus(a, path); err != nil {
		return err
	}
	if !statusWatch {
		return nil
	}

	w, err := watcher.New(path)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for {
		select {
		case _, ok := <-w.Changes():
			if !ok {
				return nil
			}
			if err := printStatus(a, path); err != nil {
				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
}
