// Package ui prints the bootstrapper's user-facing status lines.
// All output goes through a Printer so tests can capture it.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/vantagepanel/bootstrap/internal/theme"
)

// Printer writes styled status lines. Out receives normal progress
// output, Err receives warnings and errors.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// Default returns a Printer bound to stdout/stderr.
func Default() *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr}
}

// Info prints a plain status line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.Out, "  %s\n", fmt.Sprintf(format, args...))
}

// Success prints a checkmarked confirmation line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.Out, "  %s %s\n",
		theme.Success.Render("✓"), fmt.Sprintf(format, args...))
}

// Step prints a numbered progress line for a bootstrap step.
func (p *Printer) Step(n, total int, name string) {
	fmt.Fprintf(p.Out, "  %s %s...\n",
		theme.Dim.Render(fmt.Sprintf("[%d/%d]", n, total)), name)
}

// Warn prints a highlighted warning line.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.Err, "  %s %s\n",
		theme.Warn.Render("WARNING:"), fmt.Sprintf(format, args...))
}

// Error prints a highlighted error line.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintf(p.Err, "  %s %s\n",
		theme.Error.Render("ERROR:"), fmt.Sprintf(format, args...))
}
