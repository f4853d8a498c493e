/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: buffer.go
Description: Growable formatted-output buffer for the Akaylee TestKit.
Provides overwrite and append formatting (plain and colored) into an
exclusively-owned byte buffer with amortized-doubling growth and a
null-terminated content contract.
*/

package textbuf

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a contract violation: a color or another argument
// outside its defined range. It signals programmer error, not an expected
// runtime condition.
var ErrOutOfRange = errors.New("argument out of range")

const (
	// initialBufferSize is the capacity of the first allocation.
	initialBufferSize = 128

	// growthFactor is the multiplier applied on every resize.
	growthFactor = 2
)

// Buffer is an exclusively-owned, dynamically resized byte buffer holding
// formatted text. The stored content is always terminated by a null byte and
// the capacity after any successful write is the smallest
// initial-size-times-power-of-two capacity that fits the content.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	data    []byte // capacity size, content null-terminated at length
	size    int    // capacity including the terminating null byte, 0 = unallocated
	length  int    // logical content length in bytes
	colored bool
}

// New returns an empty, unallocated Buffer. The colored flag decides whether
// the colored formatting variants emit escape sequences or behave exactly
// like their plain counterparts.
func New(colored bool) *Buffer {
	return &Buffer{colored: colored}
}

// Colored reports whether the colored variants emit escape sequences.
func (b *Buffer) Colored() bool {
	return b.colored
}

// String returns the current content.
func (b *Buffer) String() string {
	return string(b.data[:b.length])
}

// Len returns the logical content length in bytes.
func (b *Buffer) Len() int {
	return b.length
}

// Size returns the current capacity including the terminating null byte.
// A fresh Buffer reports zero until the first write allocates it.
func (b *Buffer) Size() int {
	return b.size
}

// Reset truncates the content to empty. The capacity is retained so the
// buffer can be reused without reallocating.
func (b *Buffer) Reset() {
	if b.size > 0 {
		b.data[0] = 0
	}
	b.length = 0
}

// grow ensures a capacity of at least required bytes by repeatedly doubling,
// starting from the fixed initial size. Existing content is preserved.
func (b *Buffer) grow(required int) {
	if b.size >= required {
		return
	}
	newSize := b.size
	if newSize == 0 {
		newSize = initialBufferSize
	}
	for newSize < required {
		newSize *= growthFactor
	}
	newData := make([]byte, newSize)
	copy(newData, b.data[:b.length])
	b.data = newData
	b.size = newSize
}

// writeAt formats text into the buffer starting at offset, growing as needed
// and null-terminating the result.
func (b *Buffer) writeAt(offset int, text string) {
	b.grow(offset + len(text) + 1)
	copy(b.data[offset:], text)
	b.length = offset + len(text)
	b.data[b.length] = 0
}

// Setf overwrites the content with formatted text.
func (b *Buffer) Setf(format string, args ...interface{}) {
	b.writeAt(0, fmt.Sprintf(format, args...))
}

// Appendf appends formatted text after the current content, overwriting the
// previous null terminator.
func (b *Buffer) Appendf(format string, args ...interface{}) {
	b.writeAt(b.length, fmt.Sprintf(format, args...))
}

// SetColoredf overwrites the content with formatted text wrapped in the
// escape sequences for the given color pair. When the buffer was created
// with colors disabled it behaves exactly like Setf. Returns ErrOutOfRange
// for colors outside the defined palette.
func (b *Buffer) SetColoredf(foreground, background Color, format string, args ...interface{}) error {
	if err := checkColors(foreground, background); err != nil {
		return err
	}
	b.writeAt(0, b.render(foreground, background, format, args...))
	return nil
}

// AppendColoredf appends formatted text wrapped in the escape sequences for
// the given color pair. When the buffer was created with colors disabled it
// behaves exactly like Appendf. Returns ErrOutOfRange for colors outside the
// defined palette.
func (b *Buffer) AppendColoredf(foreground, background Color, format string, args ...interface{}) error {
	if err := checkColors(foreground, background); err != nil {
		return err
	}
	b.writeAt(b.length, b.render(foreground, background, format, args...))
	return nil
}

// render applies the color wrapping depending on the buffer's color state.
func (b *Buffer) render(foreground, background Color, format string, args ...interface{}) string {
	if !b.colored {
		return fmt.Sprintf(format, args...)
	}
	return Sprintf(foreground, background, format, args...)
}
