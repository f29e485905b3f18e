// Package ui provides terminal output for the saleseer CLI.
package ui

import (
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	out         io.Writer = os.Stdout
	errOut      io.Writer = os.Stderr
	verboseFlag bool
)

// InitUI applies the color and verbosity settings.
func InitUI(noColor, verbose bool) {
	verboseFlag = verbose
	if noColor {
		color.NoColor = true
	}
}

// SetOutput redirects normal and error output. Used by tests.
func SetOutput(stdout, stderr io.Writer) {
	out = stdout
	errOut = stderr
}

// Verbose reports whether verbose output was requested.
func Verbose() bool {
	return verboseFlag
}
