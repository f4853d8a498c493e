/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: suite_test.go
Description: Unit tests for suite construction and registration. Tests naming,
hook replacement semantics and test ordering within a suite.
*/

package suite_test

import (
	"testing"

	"github.com/kleascm/akaylee-testkit/pkg/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSuite tests suite creation defaults
func TestNewSuite(t *testing.T) {
	s := suite.New("Parser")
	assert.Equal(t, "Parser", s.Name())
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.SuiteSetup())
	assert.Nil(t, s.SuiteTeardown())
	assert.Nil(t, s.TestSetup())
	assert.Nil(t, s.TestTeardown())
}

// TestRegisterTestKeepsOrder tests that tests are stored in registration
// order and retrievable by index
func TestRegisterTestKeepsOrder(t *testing.T) {
	s := suite.New("Order")
	names := []string{"First", "Second", "Third", "Fourth"}
	for _, name := range names {
		s.RegisterTest(name, func(c *suite.Context) {})
	}

	require.Equal(t, len(names), s.Len())
	for i, name := range names {
		assert.Equal(t, name, s.Test(i).Name())
	}
}

// TestRegisteredFuncIsCallable tests that the stored function is the one
// registered
func TestRegisteredFuncIsCallable(t *testing.T) {
	s := suite.New("Calls")
	called := false
	s.RegisterTest("Records", func(c *suite.Context) {
		called = true
	})

	ctx := suite.NewContext(false)
	s.Test(0).Func()(ctx)
	assert.True(t, called)
}

// TestHooksLastWriteWins tests that setting a hook twice keeps only the
// second one
func TestHooksLastWriteWins(t *testing.T) {
	s := suite.New("Hooks")

	firstCalls, secondCalls := 0, 0
	s.SetSuiteSetup(func() { firstCalls++ })
	s.SetSuiteSetup(func() { secondCalls++ })

	require.NotNil(t, s.SuiteSetup())
	s.SuiteSetup()()
	assert.Equal(t, 0, firstCalls)
	assert.Equal(t, 1, secondCalls)

	// Hooks can be cleared again.
	s.SetSuiteSetup(nil)
	assert.Nil(t, s.SuiteSetup())
}

// TestAllFourHooksAreIndependent tests that the four hook slots do not
// overwrite each other
func TestAllFourHooksAreIndependent(t *testing.T) {
	s := suite.New("Slots")
	var order []string

	s.SetSuiteSetup(func() { order = append(order, "suite-setup") })
	s.SetSuiteTeardown(func() { order = append(order, "suite-teardown") })
	s.SetTestSetup(func() { order = append(order, "test-setup") })
	s.SetTestTeardown(func() { order = append(order, "test-teardown") })

	s.SuiteSetup()()
	s.TestSetup()()
	s.TestTeardown()()
	s.SuiteTeardown()()

	assert.Equal(t, []string{"suite-setup", "test-setup", "test-teardown", "suite-teardown"}, order)
}
