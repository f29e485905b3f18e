package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"unicode/utf8"
)

// Table displays rows under headers with aligned columns.
func Table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(headers, "\t"))

	separator := make([]string, len(headers))
	for i := range separator {
		separator[i] = strings.Repeat("-", len(headers[i]))
	}
	fmt.Fprintln(w, strings.Join(separator, "\t"))

	for _, row := range rows {
		clean := make([]string, len(row))
		for i, cell := range row {
			clean[i] = strings.ReplaceAll(cell, "\t", " ")
		}
		fmt.Fprintln(w, strings.Join(clean, "\t"))
	}

	_ = w.Flush()
}

// Box displays text inside a bordered box.
func Box(title string, content string) {
	lines := strings.Split(content, "\n")
	width := displayWidth(title)
	for _, line := range lines {
		if n := displayWidth(line); n > width {
			width = n
		}
	}
	if width < 40 {
		width = 40
	}

	horizontal := strings.Repeat("─", width+2)

	borderColor.Fprintf(out, "┌%s┐\n", horizontal)
	if title != "" {
		fmt.Fprintf(out, "│ %s │\n", pad(title, width))
		borderColor.Fprintf(out, "├%s┤\n", horizontal)
	}
	for _, line := range lines {
		fmt.Fprintf(out, "│ %s │\n", pad(line, width))
	}
	borderColor.Fprintf(out, "└%s┘\n", horizontal)
}

// WarningBox displays a warning message in a box.
func WarningBox(title, message string) {
	Newline()
	Box("⚠ "+title, message)
	Newline()
}

// ErrorBox displays an error message in a box.
func ErrorBox(title, message string) {
	fmt.Fprintln(errOut)
	Box("✗ "+title, message)
	fmt.Fprintln(errOut)
}

func displayWidth(s string) int {
	return utf8.RuneCountInString(s)
}

func pad(s string, width int) string {
	if n := displayWidth(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
