/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: context.go
Description: Per-test execution context for the Akaylee TestKit. Carries the
result and the diagnostic message of the currently running test, and renders
source file context around failed assertions. One context is recycled across
all tests of a suite run.
*/

package suite

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/kleascm/akaylee-testkit/pkg/interfaces"
	"github.com/kleascm/akaylee-testkit/pkg/textbuf"
)

// contextLines is the number of surrounding lines included before and after
// the line of a failed assertion.
const contextLines = 2

// Context is the mutable per-test state: a tri-state result (defaulting to
// pass) and a diagnostic message built in a growable buffer. The runner owns
// one Context per suite run and resets it before every test, so the message
// buffer's capacity is reused instead of reallocated.
//
// A Context must only be used by the single test currently executing
// against it.
type Context struct {
	result  interfaces.Result
	message *textbuf.Buffer
}

// NewContext creates a fresh context with an empty message. The colored flag
// decides whether colored message variants emit escape sequences.
func NewContext(colored bool) *Context {
	return &Context{
		result:  interfaces.ResultPass,
		message: textbuf.New(colored),
	}
}

// Reset prepares the context for the next test: the result becomes pass and
// the message is truncated to empty, retaining its capacity.
func (c *Context) Reset() {
	c.result = interfaces.ResultPass
	c.message.Reset()
}

// Result returns the current result.
func (c *Context) Result() interfaces.Result {
	return c.result
}

// SetResult sets the result. Returns textbuf.ErrOutOfRange if the value is
// not one of the three defined results; that is a contract violation, not an
// expected runtime condition.
func (c *Context) SetResult(result interfaces.Result) error {
	if !result.Valid() {
		return fmt.Errorf("%w: invalid result %d", textbuf.ErrOutOfRange, result)
	}
	c.result = result
	return nil
}

// Message returns the current diagnostic message.
func (c *Context) Message() string {
	return c.message.String()
}

// Setf overwrites the diagnostic message with formatted text.
func (c *Context) Setf(format string, args ...interface{}) {
	c.message.Setf(format, args...)
}

// SetColoredf overwrites the diagnostic message with colored formatted text.
func (c *Context) SetColoredf(foreground, background textbuf.Color, format string, args ...interface{}) error {
	return c.message.SetColoredf(foreground, background, format, args...)
}

// Appendf appends formatted text to the diagnostic message.
func (c *Context) Appendf(format string, args ...interface{}) {
	c.message.Appendf(format, args...)
}

// AppendColoredf appends colored formatted text to the diagnostic message.
func (c *Context) AppendColoredf(foreground, background textbuf.Color, format string, args ...interface{}) error {
	return c.message.AppendColoredf(foreground, background, format, args...)
}

// AppendFileContext appends the source context around the given 1-based line
// of a file to the diagnostic message: the lines [line-2, line+2], clamped to
// the start of the file, each prefixed with a right-aligned line number and a
// " | " separator. The target line is highlighted, reading simply stops at
// the end of the file.
//
// Returns textbuf.ErrOutOfRange if line < 1, or a wrapped I/O error if the
// file cannot be opened or read. When an error occurs mid-read, the first
// error wins; the file is still closed best-effort.
func (c *Context) AppendFileContext(filename string, line int) (err error) {
	if line < 1 {
		return fmt.Errorf("%w: line %d (lines are 1-based)", textbuf.ErrOutOfRange, line)
	}
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("opening %s: %w", filename, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", filename, closeErr)
		}
	}()

	firstContextLine := 1
	if line > contextLines {
		firstContextLine = line - contextLines
	}
	lastContextLine := line + contextLines
	// Line numbers are right-aligned, so the column width is dictated by the
	// widest (last) line number.
	width := int(math.Log10(float64(lastContextLine))) + 1
	numberFormat := fmt.Sprintf("  %%%dd", width)

	reader := bufio.NewReader(file)
	for i := 1; i <= lastContextLine; i++ {
		text, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return fmt.Errorf("reading %s: %w", filename, readErr)
		}
		moreLines := strings.HasSuffix(text, "\n")
		text = strings.TrimSuffix(text, "\n")
		if i >= firstContextLine {
			if appendErr := c.AppendColoredf(textbuf.ColorDarkCyan, textbuf.ColorDarkDefault, numberFormat, i); appendErr != nil {
				return appendErr
			}
			c.Appendf(" | ")
			lineColor := textbuf.ColorDarkDefault
			if i == line {
				lineColor = textbuf.ColorDarkRed
			}
			if appendErr := c.AppendColoredf(lineColor, textbuf.ColorDarkDefault, "%s\n", text); appendErr != nil {
				return appendErr
			}
		}
		if !moreLines {
			break
		}
	}
	return nil
}
