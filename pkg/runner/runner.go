/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: runner.go
Description: Execution scheduler for the Akaylee TestKit. Drives one full run:
computes sequential or seeded-random execution orders for suites and tests,
invokes setup/test/teardown callables, times every test and suite, aggregates
summaries and renders the report. Orchestration failures are fatal to the run.
*/

package runner

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kleascm/akaylee-testkit/pkg/interfaces"
	"github.com/kleascm/akaylee-testkit/pkg/logging"
	"github.com/kleascm/akaylee-testkit/pkg/random"
	"github.com/kleascm/akaylee-testkit/pkg/registry"
	"github.com/kleascm/akaylee-testkit/pkg/reporting"
	"github.com/kleascm/akaylee-testkit/pkg/suite"
	"github.com/kleascm/akaylee-testkit/pkg/textbuf"
	"github.com/kleascm/akaylee-testkit/pkg/timer"
)

// Exit codes of a run.
const (
	// ExitSuccess is returned when every test passed or was skipped.
	ExitSuccess = 0

	// ExitFailure is returned when at least one test failed or a fatal
	// orchestration error voided the run.
	ExitFailure = 1
)

// Runner executes all suites of a registry according to a run configuration.
// It owns the PRNG, the recycled per-test context and the timers for the
// duration of a run. Suites and tests run strictly one at a time; a Runner
// must not be shared between goroutines.
type Runner struct {
	registry *registry.Registry
	config   *interfaces.RunConfig
	printer  *reporting.Printer
	rng      *random.Random
	logger   *logging.Logger
	runID    string
	seed     uint64
}

// New creates a runner for the given registry and configuration. The report
// is written to stdout/stderr unless a printer is injected via SetPrinter.
func New(reg *registry.Registry, config *interfaces.RunConfig) *Runner {
	if config == nil {
		config = interfaces.DefaultRunConfig()
	}
	seed := config.Seed
	if !config.SeedSet {
		// Coarse default; reproducibility requires an explicit seed.
		seed = uint64(time.Now().Unix())
	}
	return &Runner{
		registry: reg,
		config:   config,
		printer:  reporting.NewStandardPrinter(config.Color),
		rng:      random.NewWithSeed(seed),
		runID:    uuid.New().String(),
		seed:     seed,
	}
}

// SetPrinter replaces the report printer. Useful for capturing reports in
// tests or embedding the runner in another host.
func (r *Runner) SetPrinter(printer *reporting.Printer) {
	r.printer = printer
}

// SetLogger attaches a diagnostic logger. Without one the runner stays
// silent outside the report itself.
func (r *Runner) SetLogger(logger *logging.Logger) {
	r.logger = logger
}

// Seed returns the seed driving this run's shuffles.
func (r *Runner) Seed() uint64 {
	return r.seed
}

// permutation returns the execution order for n items: the identity
// permutation (registration order) for sequential runs, or a Fisher–Yates
// shuffle driven by the run's PRNG for random ones.
func (r *Runner) permutation(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	if r.config.Order == interfaces.OrderRandom {
		for i := n - 1; i > 0; i-- {
			j := r.rng.Int64(0, int64(i))
			indices[i], indices[j] = indices[j], indices[i]
		}
	}
	return indices
}

// fatal reports an unrecoverable orchestration error. A broken test runner
// cannot be trusted to report results correctly, so the run is voided.
func (r *Runner) fatal(activity string, err error) {
	r.printer.Errorfc(
		textbuf.ColorDarkRed,
		textbuf.ColorDarkDefault,
		"An unexpected error occurred while %s (%v).\n",
		activity,
		err,
	)
	if r.logger != nil {
		r.logger.GetLogger().WithField("run_id", r.runID).Errorf("fatal: %s: %v", activity, err)
	}
}

// Run executes every registered suite and returns the aggregated summary
// plus the process exit code: ExitFailure if any test failed or a fatal
// orchestration error occurred, otherwise ExitSuccess.
func (r *Runner) Run() (interfaces.Summary, int) {
	if r.logger != nil {
		r.logger.LogRunStart(r.runID, r.config.Order.String(), r.seed, r.registry.Len())
	}
	runTimer := timer.New()
	if err := runTimer.Start(); err != nil {
		r.fatal("running the suites", err)
		return interfaces.Summary{}, ExitFailure
	}
	var summary interfaces.Summary
	var failedSuites int64
	for _, index := range r.permutation(r.registry.Len()) {
		s := r.registry.Suite(index)
		suiteSummary, err := r.executeSuite(s)
		if err != nil {
			r.fatal(fmt.Sprintf("running the suite %s", s.Name()), err)
			return summary, ExitFailure
		}
		if suiteSummary.Failed > 0 {
			failedSuites++
		}
		summary.Add(suiteSummary)
	}
	if err := runTimer.Stop(); err != nil {
		r.fatal("running the suites", err)
		return summary, ExitFailure
	}
	wall, err := runTimer.WallTime()
	if err != nil {
		r.fatal("running the suites", err)
		return summary, ExitFailure
	}
	cpu, err := runTimer.CPUTime()
	if err != nil {
		r.fatal("running the suites", err)
		return summary, ExitFailure
	}
	r.printRunSummary(summary, failedSuites, wall, cpu)
	if summary.Failed > 0 {
		return summary, ExitFailure
	}
	return summary, ExitSuccess
}

// executeSuite runs a single suite: shuffles (or keeps) the test order, runs
// the hooks around every test, reports each outcome with its timing and
// closes with the suite summary block.
func (r *Runner) executeSuite(s *suite.Suite) (interfaces.Summary, error) {
	var summary interfaces.Summary
	indices := r.permutation(s.Len())
	suiteTimer := timer.New()
	testTimer := timer.New()
	// One context is recycled across all tests of the suite to reuse the
	// message buffer's capacity.
	context := suite.NewContext(r.config.Color.Enabled())

	p := r.printer
	p.Printf("--- Suite ")
	p.Printfc(textbuf.ColorDarkCyan, textbuf.ColorDarkDefault, "%s", s.Name())
	p.Printf(" ---\n\n")

	if err := suiteTimer.Start(); err != nil {
		return summary, err
	}
	if setup := s.SuiteSetup(); setup != nil {
		setup()
	}
	for i, index := range indices {
		if setup := s.TestSetup(); setup != nil {
			setup()
		}
		test := s.Test(index)
		p.Printf("(%d/%d) Executing test ", i+1, s.Len())
		p.Printfc(textbuf.ColorDarkCyan, textbuf.ColorDarkDefault, "%s", test.Name())
		p.Printf("... ")
		context.Reset()
		if err := testTimer.Start(); err != nil {
			return summary, err
		}
		test.Func()(context)
		if err := testTimer.Stop(); err != nil {
			return summary, err
		}
		result := context.Result()
		switch result {
		case interfaces.ResultPass:
			summary.Passed++
		case interfaces.ResultSkip:
			summary.Skipped++
		case interfaces.ResultFail:
			summary.Failed++
		default:
			return summary, fmt.Errorf("unexpected test result %d", result)
		}
		p.PrintResultTag(result)
		wall, err := testTimer.WallTime()
		if err != nil {
			return summary, err
		}
		cpu, err := testTimer.CPUTime()
		if err != nil {
			return summary, err
		}
		stream := p.Out()
		if result == interfaces.ResultFail {
			stream = p.Err()
		}
		p.Fprintf(stream, " [Wall: %s, CPU: %s]\n", wall, cpu)
		if message := context.Message(); message != "" {
			p.Fprintf(stream, "%s", message)
		} else if i == s.Len()-1 {
			p.Printf("\n")
		}
		if r.logger != nil {
			r.logger.LogTest(s.Name(), test.Name(), result.String(), wall.String())
		}
		if teardown := s.TestTeardown(); teardown != nil {
			teardown()
		}
	}
	if teardown := s.SuiteTeardown(); teardown != nil {
		teardown()
	}
	if err := suiteTimer.Stop(); err != nil {
		return summary, err
	}
	wall, err := suiteTimer.WallTime()
	if err != nil {
		return summary, err
	}
	cpu, err := suiteTimer.CPUTime()
	if err != nil {
		return summary, err
	}
	p.Printf("Tests: ")
	p.PrintTestCounts(summary, int64(s.Len()))
	p.PrintTimes(wall, cpu, "\n\n")
	if r.logger != nil {
		r.logger.LogSuite(s.Name(), summary.Passed, summary.Skipped, summary.Failed, wall.String())
	}
	return summary, nil
}

// printRunSummary renders the final run-level summary block: suite and test
// counts with percentages, total wall and CPU time, and the seed line when
// the order was randomized.
func (r *Runner) printRunSummary(summary interfaces.Summary, failedSuites int64, wall, cpu interfaces.Measurement) {
	p := r.printer
	registeredSuites := int64(r.registry.Len())
	passedSuites := registeredSuites - failedSuites

	p.Printf("--- ")
	p.Printfc(textbuf.ColorDarkCyan, textbuf.ColorDarkDefault, "Summary")
	p.Printf(" ---\n\nSuites: ")
	passedColor := textbuf.ColorDarkDefault
	if passedSuites > 0 {
		passedColor = textbuf.ColorDarkGreen
	}
	p.Printfc(passedColor, textbuf.ColorDarkDefault, "%d ", passedSuites)
	p.Printf("Passed (")
	p.Printfc(passedColor, textbuf.ColorDarkDefault, "%.2f%%", reporting.Percent(passedSuites, registeredSuites))
	p.Printf("), ")
	failedColor := textbuf.ColorDarkDefault
	if failedSuites > 0 {
		failedColor = textbuf.ColorDarkRed
	}
	p.Printfc(failedColor, textbuf.ColorDarkDefault, "%d ", failedSuites)
	p.Printf("Failed (")
	p.Printfc(failedColor, textbuf.ColorDarkDefault, "%.2f%%", reporting.Percent(failedSuites, registeredSuites))
	p.Printf("), %d Total\nTests: ", registeredSuites)
	p.PrintTestCounts(summary, summary.Total())
	p.PrintTimes(wall, cpu, "\n")
	if r.config.Order == interfaces.OrderRandom {
		p.Printf("\nSeed: ")
		p.Printfc(textbuf.ColorDarkCyan, textbuf.ColorDarkDefault, "%d", r.seed)
		p.Printf(" (reproduce with --order=random --seed=%d)\n", r.seed)
	}
}
