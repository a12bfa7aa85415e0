package commands

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the log in $EDITOR",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveLog()
		if err != nil {
			return err
		}

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "nano"
		}
		edit := exec.Command(editor, path)
		edit.Stdin = os.Stdin
		edit.Stdout = os.Stdout
		edit.Stderr = os.Stderr
		if err := edit.Run(); err != nil {
			return fmt.Errorf("running editor: %w", err)
		}
		return nil
	},
}

var cdCmd = &cobra.Command{
	Use:   "cd",
	Short: "Print the resolved log path, for shell helpers",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveLog()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var execCmd = &cobra.Command{
	Use:   "exec <command> [args...]",
	Short: "Run a command with CLOCKIN_FILE set to the resolved log",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveLog()
		if err != nil {
			return err
		}

		sub := exec.Command(args[0], args[1:]...)
		sub.Env = append(os.Environ(), "CLOCKIN_FILE="+path)
		sub.Stdin = os.Stdin
		sub.Stdout = os.Stdout
		sub.Stderr = os.Stderr
		return sub.Run()
	},
}

func init() {
	rootCmd.AddCommand(editCmd, cdCmd, execCmd)
}
