package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/clockin-tool/clockin/internal/data/logfile"
	"github.com/clockin-tool/clockin/internal/data/recorder"
)

var linkCmd = &cobra.Command{
	Use:   "link <name>",
	Short: "Create a named log and symlink .clockin here to it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		link, err := logfile.Link(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("linked %s -> %s\n", link, args[0])
		return nil
	},
}

var inCmd = &cobra.Command{
	Use:   "in",
	Short: "Clock in and record a session interactively",
	Long: `in writes a start marker, then streams description lines from stdin
into the log until EOF or Ctrl-C, and closes the session with an end
marker. The end marker is written even when interrupted.`,
	RunE: runIn,
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Clock in detached: append only the start marker",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveLog()
		if err != nil {
			return err
		}
		return recorder.AppendStart(path, time.Now())
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Close a detached session: append the end marker",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveLog()
		if err != nil {
			return err
		}
		return recorder.AppendEnd(path, time.Now())
	},
}

func init() {
	rootCmd.AddCommand(linkCmd, inCmd, startCmd, stopCmd)
}

func runIn(cmd *cobra.Command, args []string) error {
	path, err := resolveLog()
	if err != nil {
		return err
	}

	r, err := recorder.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("==============")
	fmt.Println("= CLOCKED IN =")
	fmt.Println("==============")

	if err := r.Record(ctx, os.Stdin, time.Now); err != nil {
		return err
	}
	fmt.Println("clocked out")
	return nil
}
