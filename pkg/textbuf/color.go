/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: color.go
Description: Symbolic terminal colors for the Akaylee TestKit. Maps the dark
and bright color palette onto raw ANSI SGR attribute codes and renders colored
text wrapped in a combined foreground/background escape sequence and a single
reset sequence.
*/

package textbuf

import "fmt"

// Color represents a symbolic terminal color usable as a foreground or
// background color.
type Color int32

const (
	ColorDarkBlack Color = iota
	ColorDarkRed
	ColorDarkGreen
	ColorDarkYellow
	ColorDarkBlue
	ColorDarkMagenta
	ColorDarkCyan
	ColorDarkWhite
	ColorDarkDefault
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorBrightDefault
)

// foregroundSGR maps a Color to its foreground SGR attribute code.
var foregroundSGR = [...]int{
	ColorDarkBlack:     30,
	ColorDarkRed:       31,
	ColorDarkGreen:     32,
	ColorDarkYellow:    33,
	ColorDarkBlue:      34,
	ColorDarkMagenta:   35,
	ColorDarkCyan:      36,
	ColorDarkWhite:     37,
	ColorDarkDefault:   39,
	ColorBrightBlack:   90,
	ColorBrightRed:     91,
	ColorBrightGreen:   92,
	ColorBrightYellow:  93,
	ColorBrightBlue:    94,
	ColorBrightMagenta: 95,
	ColorBrightCyan:    96,
	ColorBrightWhite:   97,
	ColorBrightDefault: 99,
}

// backgroundSGR maps a Color to its background SGR attribute code.
var backgroundSGR = [...]int{
	ColorDarkBlack:     40,
	ColorDarkRed:       41,
	ColorDarkGreen:     42,
	ColorDarkYellow:    43,
	ColorDarkBlue:      44,
	ColorDarkMagenta:   45,
	ColorDarkCyan:      46,
	ColorDarkWhite:     47,
	ColorDarkDefault:   49,
	ColorBrightBlack:   100,
	ColorBrightRed:     101,
	ColorBrightGreen:   102,
	ColorBrightYellow:  103,
	ColorBrightBlue:    104,
	ColorBrightMagenta: 105,
	ColorBrightCyan:    106,
	ColorBrightWhite:   107,
	ColorBrightDefault: 109,
}

// Valid reports whether c is within the defined color palette.
func (c Color) Valid() bool {
	return c >= ColorDarkBlack && c <= ColorBrightDefault
}

const (
	// escapeFormat is the combined foreground/background SGR sequence
	// opening a colored span.
	escapeFormat = "\033[%d;%dm"

	// resetSequence closes a colored span. A single reset code, not one
	// per attribute.
	resetSequence = "\033[0m"
)

// Sprintf formats text wrapped in the escape sequence for the given
// foreground and background color pair, followed by a single reset sequence.
// Emission is decided by the caller's color policy, never by TTY detection.
// Colors must be validated by the caller.
func Sprintf(foreground, background Color, format string, args ...interface{}) string {
	return fmt.Sprintf(escapeFormat, foregroundSGR[foreground], backgroundSGR[background]) +
		fmt.Sprintf(format, args...) +
		resetSequence
}

// checkColors validates a foreground/background pair.
func checkColors(foreground, background Color) error {
	if !foreground.Valid() || !background.Valid() {
		return fmt.Errorf("%w: invalid color pair (%d, %d)", ErrOutOfRange, foreground, background)
	}
	return nil
}
