/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: assert_test.go
Description: Unit tests for the assertion helpers. Tests passing and failing
paths, result transitions, early-return values and the diagnostic message
captured on failure.
*/

package assert_test

import (
	"testing"

	"github.com/kleascm/akaylee-testkit/pkg/assert"
	"github.com/kleascm/akaylee-testkit/pkg/interfaces"
	"github.com/kleascm/akaylee-testkit/pkg/suite"

	tassert "github.com/stretchr/testify/assert"
)

func newContext() *suite.Context {
	return suite.NewContext(false)
}

// TestPassingAssertionsLeaveContextUntouched tests that satisfied assertions
// return true and record nothing
func TestPassingAssertionsLeaveContextUntouched(t *testing.T) {
	c := newContext()

	tassert.True(t, assert.That(c, true))
	tassert.True(t, assert.True(c, 1 < 2))
	tassert.True(t, assert.False(c, 1 > 2))
	tassert.True(t, assert.Nil(c, nil))
	tassert.True(t, assert.NotNil(c, "something"))
	tassert.True(t, assert.Equal(c, 4, 4))
	tassert.True(t, assert.NotEqual(c, "a", "b"))

	tassert.Equal(t, interfaces.ResultPass, c.Result())
	tassert.Empty(t, c.Message())
}

// TestFailedAssertionFailsTest tests the failing path: false return, fail
// result and a located diagnostic
func TestFailedAssertionFailsTest(t *testing.T) {
	c := newContext()

	tassert.False(t, assert.That(c, false, "the condition did not hold"))
	tassert.Equal(t, interfaces.ResultFail, c.Result())

	msg := c.Message()
	tassert.Contains(t, msg, "Assertion failed in ")
	tassert.Contains(t, msg, "assert_test.go:")
	tassert.Contains(t, msg, "  the condition did not hold\n")
}

// TestFormattedVariants tests the f-suffixed assertions carrying a printf
// message
func TestFormattedVariants(t *testing.T) {
	c := newContext()
	assert.Truef(c, false, "expected %d, got %d", 1, 2)
	tassert.Equal(t, interfaces.ResultFail, c.Result())
	tassert.Contains(t, c.Message(), "  expected 1, got 2\n")

	c = newContext()
	assert.Thatf(c, false, "checked %s twice", "input")
	tassert.Contains(t, c.Message(), "  checked input twice\n")

	c = newContext()
	tassert.True(t, assert.Falsef(c, false, "unused %d", 0))
	tassert.True(t, assert.Equalf(c, 2, 2, "unused %d", 0))
	tassert.True(t, assert.Lessf(c, 1, 2, "unused %d", 0))
	tassert.True(t, assert.Greaterf(c, 2, 1, "unused %d", 0))
	tassert.True(t, assert.NotEqualf(c, 1, 2, "unused %d", 0))
	tassert.True(t, assert.Nilf(c, nil, "unused %d", 0))
	tassert.True(t, assert.NotNilf(c, 1, "unused %d", 0))
	tassert.Equal(t, interfaces.ResultPass, c.Result())
	tassert.Empty(t, c.Message())
}

// TestEqualDefaultsItsMessage tests the generated diagnostic when no message
// is supplied
func TestEqualDefaultsItsMessage(t *testing.T) {
	c := newContext()
	assert.Equal(c, 3, 4)
	tassert.Equal(t, interfaces.ResultFail, c.Result())
	tassert.Contains(t, c.Message(), "expected 4, got 3")

	c = newContext()
	assert.NotEqual(c, "same", "same")
	tassert.Equal(t, interfaces.ResultFail, c.Result())
	tassert.Contains(t, c.Message(), "did not expect same")
}

// TestGenericEqualOverTypes tests Equal across comparable types
func TestGenericEqualOverTypes(t *testing.T) {
	c := newContext()

	tassert.True(t, assert.Equal(c, "go", "go"))
	tassert.True(t, assert.Equal(c, 1.5, 1.5))
	tassert.True(t, assert.Equal(c, [2]int{1, 2}, [2]int{1, 2}))
	tassert.Equal(t, interfaces.ResultPass, c.Result())
}

// TestNilHandlesTypedNils tests that a nil pointer stored in the interface
// still counts as nil
func TestNilHandlesTypedNils(t *testing.T) {
	c := newContext()

	var p *int
	var m map[string]int
	var s []int
	var fn func()
	tassert.True(t, assert.Nil(c, p))
	tassert.True(t, assert.Nil(c, m))
	tassert.True(t, assert.Nil(c, s))
	tassert.True(t, assert.Nil(c, fn))
	tassert.Equal(t, interfaces.ResultPass, c.Result())

	tassert.False(t, assert.NotNil(c, p))
	tassert.Equal(t, interfaces.ResultFail, c.Result())

	c = newContext()
	v := 7
	tassert.True(t, assert.NotNil(c, &v))
	tassert.True(t, assert.NotNil(c, 0))
	tassert.False(t, assert.Nil(c, &v))
	tassert.Equal(t, interfaces.ResultFail, c.Result())
}

// TestOrderedComparisons tests Less and Greater over ordered types
func TestOrderedComparisons(t *testing.T) {
	c := newContext()

	tassert.True(t, assert.Less(c, 1, 2))
	tassert.True(t, assert.Greater(c, 2.5, 1.5))
	tassert.True(t, assert.Less(c, "abc", "abd"))
	tassert.Equal(t, interfaces.ResultPass, c.Result())

	tassert.False(t, assert.Less(c, 3, 3))
	tassert.Equal(t, interfaces.ResultFail, c.Result())
	tassert.Contains(t, c.Message(), "expected a value less than 3, got 3")

	c = newContext()
	tassert.False(t, assert.Greater(c, 1, 2))
	tassert.Contains(t, c.Message(), "expected a value greater than 2, got 1")
}

// TestTerminators tests Pass, Skip and Fail with and without messages
func TestTerminators(t *testing.T) {
	c := newContext()
	assert.Pass(c)
	tassert.Equal(t, interfaces.ResultPass, c.Result())
	tassert.Empty(t, c.Message())

	c = newContext()
	assert.Skip(c, "not supported on this platform")
	tassert.Equal(t, interfaces.ResultSkip, c.Result())
	tassert.Equal(t, "\n  not supported on this platform\n\n", c.Message())

	c = newContext()
	assert.Failf(c, "gave up after %d retries", 3)
	tassert.Equal(t, interfaces.ResultFail, c.Result())
	tassert.Equal(t, "\n  gave up after 3 retries\n\n", c.Message())

	c = newContext()
	assert.Fail(c, "plain reason")
	tassert.Equal(t, interfaces.ResultFail, c.Result())
	tassert.Equal(t, "\n  plain reason\n\n", c.Message())
}

// TestFailureCapturesFileContext tests that the failing line of this very
// file shows up in the diagnostic
func TestFailureCapturesFileContext(t *testing.T) {
	c := newContext()
	assert.That(c, false) // the diagnostic quotes this line
	tassert.Contains(t, c.Message(), "the diagnostic quotes this line")
}
