package main

import (
	"os"

	"github.com/clockin-tool/clockin/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
