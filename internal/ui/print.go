// Package ui holds the terminal output helpers: colored status lines,
// the commit message preview panel, and a TTY-aware spinner.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	infoColor    = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
	titleColor   = color.New(color.Bold)
	ruleColor    = color.New(color.FgCyan)
)

// Info prints a plain informational line.
func Info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}

// Hint prints a secondary informational line in cyan.
func Hint(w io.Writer, format string, args ...any) {
	infoColor.Fprintf(w, format+"\n", args...)
}

// Warn prints a warning line.
func Warn(w io.Writer, format string, args ...any) {
	warnColor.Fprintf(w, "Warning: "+format+"\n", args...)
}

// Error prints an error line.
func Error(w io.Writer, format string, args ...any) {
	errorColor.Fprintf(w, "Error: "+format+"\n", args...)
}

// Success prints a success line.
func Success(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, format+"\n", args...)
}

// PrintPreview renders content between horizontal rules under a bold
// title, sized to the terminal when one is attached.
func PrintPreview(w io.Writer, title, content string) {
	rule := strings.Repeat("─", ruleWidth())

	titleColor.Fprintf(w, "\n%s:\n", title)
	ruleColor.Fprintln(w, rule)
	fmt.Fprintln(w, content)
	ruleColor.Fprintln(w, rule)
}

func ruleWidth() int {
	const fallback = 60
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	if width > 80 {
		return 80
	}
	if width < 20 {
		return 20
	}
	return width
}
