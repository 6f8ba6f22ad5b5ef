package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/zephyrtronium/minitalk"
)

// prettyReporter prints diagnostics for people. The message line is the same
// text a plain WriterReporter prints; color and excerpts only decorate it.
type prettyReporter struct {
	w       io.Writer
	excerpt bool

	sev   map[minitalk.Severity]*color.Color
	caret *color.Color
	code  *color.Color
}

func newPrettyReporter(w io.Writer, useColor, excerpt bool) *prettyReporter {
	r := &prettyReporter{
		w:       w,
		excerpt: excerpt,
		sev: map[minitalk.Severity]*color.Color{
			minitalk.SevInfo:    color.New(color.FgCyan),
			minitalk.SevWarning: color.New(color.FgYellow),
			minitalk.SevError:   color.New(color.FgRed, color.Bold),
		},
		caret: color.New(color.FgRed, color.Bold),
		code:  color.New(color.Faint),
	}
	for _, c := range r.colors() {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *prettyReporter) colors() []*color.Color {
	c := []*color.Color{r.caret, r.code}
	for _, s := range r.sev {
		c = append(c, s)
	}
	return c
}

// Report prints the diagnostic and, if enabled, an excerpt of its source line
// with the offending span underlined.
func (r *prettyReporter) Report(d minitalk.Diagnostic) {
	sev := r.sev[d.Severity]
	if sev == nil {
		sev = r.code
	}
	fmt.Fprintln(r.w, sev.Sprint(d.Message))
	if !r.excerpt || d.Source == "" || int(d.Span.End) > len(d.Source) || d.Span.Start > d.Span.End {
		return
	}
	line := strings.TrimRight(d.Source, "\r\n")
	pad := runewidth.StringWidth(d.Source[:d.Span.Start])
	width := runewidth.StringWidth(d.Span.Text(d.Source))
	if width == 0 {
		width = 1
	}
	fmt.Fprintf(r.w, "    %s\n", line)
	fmt.Fprintf(r.w, "    %s%s %s\n", strings.Repeat(" ", pad), r.caret.Sprint(strings.Repeat("^", width)), r.code.Sprint(d.Code))
}

// colorMode decides whether to colorize output written to f.
func colorMode(mode string, f *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(f)
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
