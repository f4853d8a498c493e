/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: context_test.go
Description: Unit tests for the per-test execution context. Tests result
transitions, message accumulation, reset recycling and source file context
rendering including clamping and end-of-file behavior.
*/

package suite_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleascm/akaylee-testkit/pkg/interfaces"
	"github.com/kleascm/akaylee-testkit/pkg/suite"
	"github.com/kleascm/akaylee-testkit/pkg/textbuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeLines creates a file of numbered lines ("line 1" .. "line n") in a
// temp dir and returns its path.
func writeLines(t *testing.T, n int) string {
	t.Helper()
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sb, "line %d\n", i)
	}
	path := filepath.Join(t.TempDir(), "source.txt")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0644))
	return path
}

// TestContextDefaultsToPass tests the initial state
func TestContextDefaultsToPass(t *testing.T) {
	c := suite.NewContext(false)
	assert.Equal(t, interfaces.ResultPass, c.Result())
	assert.Equal(t, "", c.Message())
}

// TestSetResult tests result transitions and range validation
func TestSetResult(t *testing.T) {
	c := suite.NewContext(false)

	require.NoError(t, c.SetResult(interfaces.ResultSkip))
	assert.Equal(t, interfaces.ResultSkip, c.Result())

	require.NoError(t, c.SetResult(interfaces.ResultFail))
	assert.Equal(t, interfaces.ResultFail, c.Result())

	err := c.SetResult(interfaces.Result(99))
	require.ErrorIs(t, err, textbuf.ErrOutOfRange)
	// A rejected transition leaves the result untouched.
	assert.Equal(t, interfaces.ResultFail, c.Result())
}

// TestMessageAccumulation tests the set and append message variants
func TestMessageAccumulation(t *testing.T) {
	c := suite.NewContext(false)

	c.Setf("expected %d", 1)
	c.Appendf(", got %d", 2)
	assert.Equal(t, "expected 1, got 2", c.Message())

	c.Setf("replaced")
	assert.Equal(t, "replaced", c.Message())

	// With colors disabled the colored variants render plain.
	require.NoError(t, c.AppendColoredf(textbuf.ColorDarkRed, textbuf.ColorDarkDefault, " here"))
	assert.Equal(t, "replaced here", c.Message())
}

// TestResetRecyclesContext tests that Reset restores the pass result and
// empties the message
func TestResetRecyclesContext(t *testing.T) {
	c := suite.NewContext(false)
	require.NoError(t, c.SetResult(interfaces.ResultFail))
	c.Setf("diagnostics")

	c.Reset()
	assert.Equal(t, interfaces.ResultPass, c.Result())
	assert.Equal(t, "", c.Message())
}

// TestFileContextMidFile tests the rendered window around a mid-file line:
// two lines of context on both sides, right-aligned two-digit numbers
func TestFileContextMidFile(t *testing.T) {
	path := writeLines(t, 20)
	c := suite.NewContext(false)

	require.NoError(t, c.AppendFileContext(path, 10))

	expected := "" +
		"   8 | line 8\n" +
		"   9 | line 9\n" +
		"  10 | line 10\n" +
		"  11 | line 11\n" +
		"  12 | line 12\n"
	assert.Equal(t, expected, c.Message())
}

// TestFileContextClampsAtStart tests that a target near the top of the file
// starts at line one instead of a negative line
func TestFileContextClampsAtStart(t *testing.T) {
	path := writeLines(t, 20)
	c := suite.NewContext(false)

	require.NoError(t, c.AppendFileContext(path, 1))

	expected := "" +
		"  1 | line 1\n" +
		"  2 | line 2\n" +
		"  3 | line 3\n"
	assert.Equal(t, expected, c.Message())
}

// TestFileContextStopsAtEOF tests that the window is truncated when the file
// ends inside it
func TestFileContextStopsAtEOF(t *testing.T) {
	path := writeLines(t, 5)
	c := suite.NewContext(false)

	require.NoError(t, c.AppendFileContext(path, 5))

	// The file's final newline yields one empty numbered line before EOF.
	expected := "" +
		"  3 | line 3\n" +
		"  4 | line 4\n" +
		"  5 | line 5\n" +
		"  6 | \n"
	assert.Equal(t, expected, c.Message())
}

// TestFileContextHighlightsTargetLine tests that with colors enabled the
// target line is wrapped in the red escape sequence
func TestFileContextHighlightsTargetLine(t *testing.T) {
	path := writeLines(t, 20)
	c := suite.NewContext(true)

	require.NoError(t, c.AppendFileContext(path, 10))

	msg := c.Message()
	assert.Contains(t, msg, "\x1b[31;49mline 10\n\x1b[0m")
	assert.Contains(t, msg, "\x1b[36;49m   9\x1b[0m | ")
}

// TestFileContextErrors tests line validation and missing files
func TestFileContextErrors(t *testing.T) {
	c := suite.NewContext(false)

	err := c.AppendFileContext("irrelevant", 0)
	require.ErrorIs(t, err, textbuf.ErrOutOfRange)

	err = c.AppendFileContext(filepath.Join(t.TempDir(), "missing.txt"), 3)
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}
