// Package ui formats the messages bin2c prints to the terminal.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	usageLabel = color.New(color.Bold)
)

// isTerminal reports whether w is a terminal. Colour is only used then, so
// redirected output stays plain text.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func label(w io.Writer, c *color.Color, s string) string {
	if !isTerminal(w) {
		return s
	}
	c.EnableColor()
	return c.Sprint(s)
}

// PrintUsage prints the usage line.
func PrintUsage(w io.Writer, useLine string) {
	fmt.Fprintf(w, "%s %s\n", label(w, usageLabel, "Usage:"), useLine)
}

// PrintRead reports how many bytes were read from path.
func PrintRead(w io.Writer, n int, path string) {
	fmt.Fprintf(w, "%d read from file %s\n", n, path)
}

// PrintError prints err as a single "ERROR <message>" line.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", label(w, errorLabel, "ERROR"), err.Error())
}
