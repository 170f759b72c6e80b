// Package console prints the banners mkicons shows at the end of a run.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	green  = color.New(color.FgGreen).Add(color.Bold)
	yellow = color.New(color.FgYellow).Add(color.Bold)
)

// Alternatives are offered when icons cannot be encoded.
var Alternatives = []string{
	"Use any image editor to create PNG files",
	"Use an online icon generator",
	"Download free medical icons from icon websites",
}

// Printer writes banners to W. Emoji is only prefixed when Emoji is set.
type Printer struct {
	W     io.Writer
	Emoji bool
}

// Stdout returns a Printer for os.Stdout, using emoji only on a terminal.
func Stdout() Printer {
	return Printer{W: os.Stdout, Emoji: term.IsTerminal(int(os.Stdout.Fd()))}
}

func (p Printer) prefix(e string) string {
	if p.Emoji {
		return e + " "
	}
	return ""
}

// Success prints the final banner after all icons were written.
func (p Printer) Success() {
	fmt.Fprintln(p.W)
	green.Fprintf(p.W, "%sAll icons generated successfully!\n", p.prefix("✅"))
}

// Remediation explains how to get icons when no PNG encoder is available.
func (p Printer) Remediation() {
	yellow.Fprintf(p.W, "%sPNG encoder is not available.\n", p.prefix("⚠️"))
	fmt.Fprintln(p.W, "Rebuild mkicons with the PNG encoder linked in.")
	fmt.Fprintln(p.W, "\nAlternatively, you can:")
	for i, a := range Alternatives {
		fmt.Fprintf(p.W, "%d. %s\n", i+1, a)
	}
}
