/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared types for the Akaylee TestKit. Defines the core value types
used across all packages (results, execution order, color mode, summaries and
time measurements) to break import cycles and enable proper modular design.
*/

package interfaces

import "fmt"

// Result represents the outcome of a single test.
type Result int32

const (
	// ResultPass indicates that a test passed. This is the default outcome of
	// every test that does not explicitly skip or fail.
	ResultPass Result = iota

	// ResultSkip indicates that a test was skipped.
	ResultSkip

	// ResultFail indicates that a test failed.
	ResultFail
)

// Valid reports whether r is one of the three defined results.
func (r Result) Valid() bool {
	return r >= ResultPass && r <= ResultFail
}

// String returns the display tag of the result.
func (r Result) String() string {
	switch r {
	case ResultPass:
		return "PASS"
	case ResultSkip:
		return "SKIP"
	case ResultFail:
		return "FAIL"
	default:
		return fmt.Sprintf("Result(%d)", int32(r))
	}
}

// Order represents the order in which suites and tests are executed.
type Order int32

const (
	// OrderSequential executes suites and tests in registration order.
	// This is the default.
	OrderSequential Order = iota

	// OrderRandom executes suites and tests in a seeded, reproducible
	// random order.
	OrderRandom
)

// Valid reports whether o is a defined execution order.
func (o Order) Valid() bool {
	return o == OrderSequential || o == OrderRandom
}

// String returns the configuration name of the order.
func (o Order) String() string {
	switch o {
	case OrderSequential:
		return "sequential"
	case OrderRandom:
		return "random"
	default:
		return fmt.Sprintf("Order(%d)", int32(o))
	}
}

// ParseOrder converts a configuration string into an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "sequential":
		return OrderSequential, nil
	case "random":
		return OrderRandom, nil
	default:
		return OrderSequential, fmt.Errorf("invalid order %q (expected \"sequential\" or \"random\")", s)
	}
}

// ColorMode represents the state of the colored output.
type ColorMode int32

const (
	// ColorNever disables colored output entirely.
	ColorNever ColorMode = iota

	// ColorAlways enables colored output. This is the default.
	ColorAlways
)

// Valid reports whether m is a defined color mode.
func (m ColorMode) Valid() bool {
	return m == ColorNever || m == ColorAlways
}

// Enabled reports whether escape sequences should be emitted.
func (m ColorMode) Enabled() bool {
	return m == ColorAlways
}

// ParseColorMode converts a configuration string into a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "disabled":
		return ColorNever, nil
	case "enabled":
		return ColorAlways, nil
	default:
		return ColorAlways, fmt.Errorf("invalid colored output %q (expected \"enabled\" or \"disabled\")", s)
	}
}

// Summary holds the aggregated outcome counters of a suite or an entire run.
// It is a pure value type: produced fresh per suite and re-aggregated at the
// top level.
type Summary struct {
	Passed  int64 `json:"passed"`
	Skipped int64 `json:"skipped"`
	Failed  int64 `json:"failed"`
}

// Total returns the total number of counted tests.
func (s Summary) Total() int64 {
	return s.Passed + s.Skipped + s.Failed
}

// Add accumulates another summary into this one.
func (s *Summary) Add(other Summary) {
	s.Passed += other.Passed
	s.Skipped += other.Skipped
	s.Failed += other.Failed
}

// TimeUnit represents the display unit of a time measurement.
type TimeUnit int32

const (
	TimeUnitNanoseconds TimeUnit = iota
	TimeUnitMicroseconds
	TimeUnitMilliseconds
	TimeUnitSeconds
	TimeUnitMinutes
	TimeUnitHours
)

// String returns the abbreviated unit suffix used in reports.
func (u TimeUnit) String() string {
	switch u {
	case TimeUnitNanoseconds:
		return "ns"
	case TimeUnitMicroseconds:
		return "us"
	case TimeUnitMilliseconds:
		return "ms"
	case TimeUnitSeconds:
		return "s"
	case TimeUnitMinutes:
		return "min"
	case TimeUnitHours:
		return "h"
	default:
		return fmt.Sprintf("TimeUnit(%d)", int32(u))
	}
}

// Measurement represents an elapsed time scaled to a unit chosen by
// magnitude, as produced by a stopped timer.
type Measurement struct {
	Time float64  `json:"time"`
	Unit TimeUnit `json:"unit"`
}

// String renders the measurement the way reports print it.
func (m Measurement) String() string {
	return fmt.Sprintf("%.3f %s", m.Time, m.Unit)
}

// RunConfig carries the external configuration of a single run. It is
// constructed once (typically by the CLI layer) and threaded explicitly
// through the runner instead of living in hidden process-wide state, so
// multiple independent runs can coexist in one process.
type RunConfig struct {
	// Order in which suites and tests are executed.
	Order Order

	// Seed for the PRNG driving random execution order. Only consulted when
	// Order is OrderRandom.
	Seed uint64

	// SeedSet records whether Seed was supplied explicitly. When false and
	// the order is random, the runner derives a seed from the current time
	// and reports it for reproduction.
	SeedSet bool

	// Color controls whether reports use ANSI escape sequences.
	Color ColorMode

	// LogLevel is the logrus level for orchestration diagnostics
	// ("debug", "info", "warn", "error"). Empty means "info".
	LogLevel string
}

// DefaultRunConfig returns the configuration used when nothing is specified:
// sequential order, colored output.
func DefaultRunConfig() *RunConfig {
	return &RunConfig{
		Order: OrderSequential,
		Color: ColorAlways,
	}
}
