/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: assert.go
Description: Assertion helpers for Akaylee TestKit test authors. Record
pass/skip/fail outcomes and diagnostic messages on the test context; failed
assertions capture the calling source location and append the surrounding
file context. Helpers return false on failure so tests can return early.
Every assertion has an f-suffixed variant taking a format string, so printf
vetting classifies formatted calls correctly.
*/

package assert

import (
	"cmp"
	"fmt"
	"reflect"
	"runtime"

	"github.com/kleascm/akaylee-testkit/pkg/interfaces"
	"github.com/kleascm/akaylee-testkit/pkg/suite"
)

// message renders an optional plain message: either nothing, a single value,
// or several values joined the fmt.Sprint way. Formatted messages go through
// the f-suffixed assertion variants instead.
func message(msgAndArgs ...interface{}) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("%v", msgAndArgs[0])
	default:
		return fmt.Sprint(msgAndArgs...)
	}
}

// isNil reports whether a value is nil, including typed nils (a nil pointer,
// map, slice, channel or function stored in the interface).
func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// terminate records a final result with an optional message. The test
// function should return right after one of the terminators.
func terminate(c *suite.Context, result interfaces.Result, msg string) {
	if msg != "" {
		c.Appendf("\n  %s\n\n", msg)
	}
	// The result is one of the three defined variants here, so the range
	// check cannot fire.
	_ = c.SetResult(result)
}

// Pass marks the current test as passed, with an optional message.
func Pass(c *suite.Context, msgAndArgs ...interface{}) {
	terminate(c, interfaces.ResultPass, message(msgAndArgs...))
}

// Passf marks the current test as passed with a formatted message.
func Passf(c *suite.Context, format string, args ...interface{}) {
	terminate(c, interfaces.ResultPass, fmt.Sprintf(format, args...))
}

// Skip marks the current test as skipped, with an optional message.
func Skip(c *suite.Context, msgAndArgs ...interface{}) {
	terminate(c, interfaces.ResultSkip, message(msgAndArgs...))
}

// Skipf marks the current test as skipped with a formatted message.
func Skipf(c *suite.Context, format string, args ...interface{}) {
	terminate(c, interfaces.ResultSkip, fmt.Sprintf(format, args...))
}

// Fail marks the current test as failed, with an optional message.
func Fail(c *suite.Context, msgAndArgs ...interface{}) {
	terminate(c, interfaces.ResultFail, message(msgAndArgs...))
}

// Failf marks the current test as failed with a formatted message.
func Failf(c *suite.Context, format string, args ...interface{}) {
	terminate(c, interfaces.ResultFail, fmt.Sprintf(format, args...))
}

// fail records an assertion failure: the calling source location, the file
// context around the failing line and the optional message. File context is
// best-effort; a binary running far away from its sources still reports the
// location and message. Must be called directly by an exported assertion so
// the captured caller is the test function.
func fail(c *suite.Context, msg string) bool {
	// Caller 0 is fail, 1 the exported assertion, 2 the test function.
	_, file, line, ok := runtime.Caller(2)
	if ok {
		c.Appendf("\n  Assertion failed in %s:%d:\n\n", file, line)
		if err := c.AppendFileContext(file, line); err == nil {
			c.Appendf("\n")
		}
	} else {
		c.Appendf("\n  Assertion failed:\n\n")
	}
	if msg != "" {
		c.Appendf("  %s\n\n", msg)
	}
	_ = c.SetResult(interfaces.ResultFail)
	return false
}

// That asserts that an arbitrary condition holds. Returns false (and fails
// the test) when it does not, so callers can return early.
func That(c *suite.Context, condition bool, msgAndArgs ...interface{}) bool {
	if condition {
		return true
	}
	return fail(c, message(msgAndArgs...))
}

// Thatf is That with a formatted message.
func Thatf(c *suite.Context, condition bool, format string, args ...interface{}) bool {
	if condition {
		return true
	}
	return fail(c, fmt.Sprintf(format, args...))
}

// True asserts that a condition is true.
func True(c *suite.Context, condition bool, msgAndArgs ...interface{}) bool {
	if condition {
		return true
	}
	return fail(c, message(msgAndArgs...))
}

// Truef is True with a formatted message.
func Truef(c *suite.Context, condition bool, format string, args ...interface{}) bool {
	if condition {
		return true
	}
	return fail(c, fmt.Sprintf(format, args...))
}

// False asserts that a condition is false.
func False(c *suite.Context, condition bool, msgAndArgs ...interface{}) bool {
	if !condition {
		return true
	}
	return fail(c, message(msgAndArgs...))
}

// Falsef is False with a formatted message.
func Falsef(c *suite.Context, condition bool, format string, args ...interface{}) bool {
	if !condition {
		return true
	}
	return fail(c, fmt.Sprintf(format, args...))
}

// Nil asserts that a value is nil. Typed nils (a nil *T stored in the
// interface) count as nil.
func Nil(c *suite.Context, value interface{}, msgAndArgs ...interface{}) bool {
	if isNil(value) {
		return true
	}
	return fail(c, message(msgAndArgs...))
}

// Nilf is Nil with a formatted message.
func Nilf(c *suite.Context, value interface{}, format string, args ...interface{}) bool {
	if isNil(value) {
		return true
	}
	return fail(c, fmt.Sprintf(format, args...))
}

// NotNil asserts that a value is not nil, treating typed nils as nil.
func NotNil(c *suite.Context, value interface{}, msgAndArgs ...interface{}) bool {
	if !isNil(value) {
		return true
	}
	return fail(c, message(msgAndArgs...))
}

// NotNilf is NotNil with a formatted message.
func NotNilf(c *suite.Context, value interface{}, format string, args ...interface{}) bool {
	if !isNil(value) {
		return true
	}
	return fail(c, fmt.Sprintf(format, args...))
}

// Equal asserts that two comparable values are equal.
func Equal[T comparable](c *suite.Context, actual, expected T, msgAndArgs ...interface{}) bool {
	if actual == expected {
		return true
	}
	msg := message(msgAndArgs...)
	if msg == "" {
		msg = fmt.Sprintf("expected %v, got %v", expected, actual)
	}
	return fail(c, msg)
}

// Equalf is Equal with a formatted message.
func Equalf[T comparable](c *suite.Context, actual, expected T, format string, args ...interface{}) bool {
	if actual == expected {
		return true
	}
	return fail(c, fmt.Sprintf(format, args...))
}

// NotEqual asserts that two comparable values are not equal.
func NotEqual[T comparable](c *suite.Context, actual, unexpected T, msgAndArgs ...interface{}) bool {
	if actual != unexpected {
		return true
	}
	msg := message(msgAndArgs...)
	if msg == "" {
		msg = fmt.Sprintf("did not expect %v", unexpected)
	}
	return fail(c, msg)
}

// NotEqualf is NotEqual with a formatted message.
func NotEqualf[T comparable](c *suite.Context, actual, unexpected T, format string, args ...interface{}) bool {
	if actual != unexpected {
		return true
	}
	return fail(c, fmt.Sprintf(format, args...))
}

// Less asserts that actual is strictly less than bound.
func Less[T cmp.Ordered](c *suite.Context, actual, bound T, msgAndArgs ...interface{}) bool {
	if actual < bound {
		return true
	}
	msg := message(msgAndArgs...)
	if msg == "" {
		msg = fmt.Sprintf("expected a value less than %v, got %v", bound, actual)
	}
	return fail(c, msg)
}

// Lessf is Less with a formatted message.
func Lessf[T cmp.Ordered](c *suite.Context, actual, bound T, format string, args ...interface{}) bool {
	if actual < bound {
		return true
	}
	return fail(c, fmt.Sprintf(format, args...))
}

// Greater asserts that actual is strictly greater than bound.
func Greater[T cmp.Ordered](c *suite.Context, actual, bound T, msgAndArgs ...interface{}) bool {
	if actual > bound {
		return true
	}
	msg := message(msgAndArgs...)
	if msg == "" {
		msg = fmt.Sprintf("expected a value greater than %v, got %v", bound, actual)
	}
	return fail(c, msg)
}

// Greaterf is Greater with a formatted message.
func Greaterf[T cmp.Ordered](c *suite.Context, actual, bound T, format string, args ...interface{}) bool {
	if actual > bound {
		return true
	}
	return fail(c, fmt.Sprintf(format, args...))
}
