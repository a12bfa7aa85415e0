// Package formatter renders the report aggregates for the terminal or
// as JSON. Rendering is presentation only; every number it prints is
// computed by the analyzer.
package formatter

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const fallbackWidth = 80

// TerminalWidth returns the current terminal width, falling back to a
// conventional 80 columns when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 40 {
		return fallbackWidth
	}
	return width
}

// padRight pads s to the given display width, counting wide runes
// correctly so columns line up for any description text.
func padRight(s string, width int) string {
	actual := runewidth.StringWidth(s)
	if actual >= width {
		return s
	}
	return s + strings.Repeat(" ", width-actual)
}
