/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: suite.go
Description: Suite and test model for the Akaylee TestKit. A suite is a named,
ordered group of tests with at most one setup/teardown hook of each kind.
Tests are registered explicitly and executed by the runner in registration
order or a shuffled permutation.
*/

package suite

// TestFunc is the callable body of a test. It records its outcome on the
// given Context; returning without touching the context means the test
// passed.
type TestFunc func(*Context)

// HookFunc is a suite or per-test setup/teardown callable.
type HookFunc func()

// Test is a named test registered on a suite.
type Test struct {
	name string
	fn   TestFunc
}

// Name returns the test's name.
func (t *Test) Name() string {
	return t.name
}

// Func returns the test's callable body.
func (t *Test) Func() TestFunc {
	return t.fn
}

// Suite is a named, ordered collection of tests sharing optional hooks.
// Registration is append-only: there is no removal API, and the test order
// is the registration order. A Suite is not safe for concurrent use.
type Suite struct {
	name          string
	suiteSetup    HookFunc
	suiteTeardown HookFunc
	testSetup     HookFunc
	testTeardown  HookFunc
	tests         []Test
}

// New creates an empty suite with the given name.
func New(name string) *Suite {
	return &Suite{name: name}
}

// Name returns the suite's name.
func (s *Suite) Name() string {
	return s.name
}

// SetSuiteSetup registers the hook executed once before all tests of the
// suite. Registering again replaces the previous hook.
func (s *Suite) SetSuiteSetup(hook HookFunc) {
	s.suiteSetup = hook
}

// SetSuiteTeardown registers the hook executed once after all tests of the
// suite. Registering again replaces the previous hook.
func (s *Suite) SetSuiteTeardown(hook HookFunc) {
	s.suiteTeardown = hook
}

// SetTestSetup registers the hook executed before each individual test.
// Registering again replaces the previous hook.
func (s *Suite) SetTestSetup(hook HookFunc) {
	s.testSetup = hook
}

// SetTestTeardown registers the hook executed after each individual test.
// Registering again replaces the previous hook.
func (s *Suite) SetTestTeardown(hook HookFunc) {
	s.testTeardown = hook
}

// SuiteSetup returns the registered suite setup hook, or nil.
func (s *Suite) SuiteSetup() HookFunc { return s.suiteSetup }

// SuiteTeardown returns the registered suite teardown hook, or nil.
func (s *Suite) SuiteTeardown() HookFunc { return s.suiteTeardown }

// TestSetup returns the registered per-test setup hook, or nil.
func (s *Suite) TestSetup() HookFunc { return s.testSetup }

// TestTeardown returns the registered per-test teardown hook, or nil.
func (s *Suite) TestTeardown() HookFunc { return s.testTeardown }

// RegisterTest appends a named test to the suite. The test collection grows
// by amortized doubling, so registration stays O(1) per test.
func (s *Suite) RegisterTest(name string, fn TestFunc) {
	s.tests = append(s.tests, Test{name: name, fn: fn})
}

// Len returns the number of registered tests.
func (s *Suite) Len() int {
	return len(s.tests)
}

// Test returns the i-th registered test.
func (s *Suite) Test(i int) *Test {
	return &s.tests[i]
}
