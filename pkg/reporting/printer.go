/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: printer.go
Description: Colored stream printing for the Akaylee TestKit. Provides the
report output surface used by the runner: plain and color-wrapped formatted
printing to an output and an error stream, driven by an explicit color mode
instead of hidden process-wide state.
*/

package reporting

import (
	"fmt"
	"io"
	"os"

	"github.com/kleascm/akaylee-testkit/pkg/interfaces"
	"github.com/kleascm/akaylee-testkit/pkg/textbuf"
)

// Printer renders report text to an output and an error stream. The color
// mode is fixed at construction and threaded through every colored call, so
// two printers with different modes can coexist in one process.
//
// Stream write failures are not recoverable at the report layer and are
// intentionally ignored, matching ordinary stdout printing behavior.
type Printer struct {
	out  io.Writer
	err  io.Writer
	mode interfaces.ColorMode
}

// NewPrinter creates a printer writing to the given streams.
func NewPrinter(out, err io.Writer, mode interfaces.ColorMode) *Printer {
	return &Printer{out: out, err: err, mode: mode}
}

// NewStandardPrinter creates a printer writing to stdout and stderr.
func NewStandardPrinter(mode interfaces.ColorMode) *Printer {
	return NewPrinter(os.Stdout, os.Stderr, mode)
}

// Mode returns the printer's color mode.
func (p *Printer) Mode() interfaces.ColorMode {
	return p.mode
}

// Printf writes formatted text to the output stream.
func (p *Printer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Printfc writes color-wrapped formatted text to the output stream. With
// colors disabled it behaves exactly like Printf.
func (p *Printer) Printfc(foreground, background textbuf.Color, format string, args ...interface{}) {
	fmt.Fprint(p.out, p.render(foreground, background, format, args...))
}

// Errorf writes formatted text to the error stream.
func (p *Printer) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(p.err, format, args...)
}

// Errorfc writes color-wrapped formatted text to the error stream. With
// colors disabled it behaves exactly like Errorf.
func (p *Printer) Errorfc(foreground, background textbuf.Color, format string, args ...interface{}) {
	fmt.Fprint(p.err, p.render(foreground, background, format, args...))
}

// Fprintf writes formatted text to the given stream, which callers pick as
// Out or Err depending on the test result they are reporting.
func (p *Printer) Fprintf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
}

// Out returns the output stream.
func (p *Printer) Out() io.Writer { return p.out }

// Err returns the error stream.
func (p *Printer) Err() io.Writer { return p.err }

// render applies color wrapping depending on the printer's mode.
func (p *Printer) render(foreground, background textbuf.Color, format string, args ...interface{}) string {
	if !p.mode.Enabled() {
		return fmt.Sprintf(format, args...)
	}
	return textbuf.Sprintf(foreground, background, format, args...)
}
