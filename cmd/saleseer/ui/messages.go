package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	stepColor    = color.New(color.FgBlue)
	titleColor   = color.New(color.FgMagenta, color.Bold)
	borderColor  = color.New(color.FgCyan, color.Bold)
)

// Success displays a success message.
func Success(format string, args ...interface{}) {
	successColor.Fprintf(out, "✓ %s\n", fmt.Sprintf(format, args...))
}

// Error displays an error message to stderr.
func Error(format string, args ...interface{}) {
	errorColor.Fprintf(errOut, "✗ %s\n", fmt.Sprintf(format, args...))
}

// Warning displays a warning message.
func Warning(format string, args ...interface{}) {
	warnColor.Fprintf(out, "⚠ %s\n", fmt.Sprintf(format, args...))
}

// Info displays an informational message.
func Info(format string, args ...interface{}) {
	infoColor.Fprintf(out, "ℹ %s\n", fmt.Sprintf(format, args...))
}

// Step displays a step indicator message.
func Step(format string, args ...interface{}) {
	stepColor.Fprintf(out, "→ %s\n", fmt.Sprintf(format, args...))
}

// Debug displays a message only in verbose mode.
func Debug(format string, args ...interface{}) {
	if !verboseFlag {
		return
	}
	fmt.Fprintf(out, "  %s\n", fmt.Sprintf(format, args...))
}

// Message displays a plain line.
func Message(format string, args ...interface{}) {
	fmt.Fprintf(out, format, args...)
	fmt.Fprintln(out)
}

// Newline prints a newline.
func Newline() {
	fmt.Fprintln(out)
}

// Section displays a section header.
func Section(title string) {
	titleColor.Fprintf(out, "\n%s\n", title)
	fmt.Fprintf(out, "%s\n\n", strings.Repeat("=", displayWidth(title)))
}

// KeyValue displays a key-value pair.
func KeyValue(key, value string) {
	fmt.Fprintf(out, "  %s: %s\n", key, value)
}

// FormatList formats a list of items as bullets.
func FormatList(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	return sb.String()
}
