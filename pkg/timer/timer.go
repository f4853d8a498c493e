/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: timer.go
Description: Wall and CPU time measurement for the Akaylee TestKit. Provides a
start/stop/restart timer state machine backed by the monotonic clock and the
process CPU-time clock, producing measurements scaled to a readable unit.
*/

package timer

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/kleascm/akaylee-testkit/pkg/interfaces"
)

// Timer state machine misuse errors.
var (
	// ErrRunning indicates that a running timer was started or queried.
	ErrRunning = errors.New("timer is running")

	// ErrNotRunning indicates that a stopped timer was stopped or restarted.
	ErrNotRunning = errors.New("timer is not running")
)

const (
	nanosecondsPerSecond  = 1_000_000_000
	microsecondsPerSecond = 1_000_000
	millisecondsPerSecond = 1000
	secondsPerMinute      = 60
	secondsPerHour        = 3600
)

// Timer measures elapsed wall time and process CPU time between a start and
// a stop point. The zero value is a stopped timer ready for use.
//
// A Timer is not safe for concurrent use.
type Timer struct {
	wallStartSeconds float64
	wallEndSeconds   float64
	cpuStartSeconds  float64
	cpuEndSeconds    float64
	running          bool
}

// New returns a stopped timer.
func New() *Timer {
	return &Timer{}
}

// timespecToSeconds converts a clock reading to seconds.
func timespecToSeconds(ts unix.Timespec) float64 {
	return float64(ts.Sec) + float64(ts.Nsec)/nanosecondsPerSecond
}

// readClocks samples the monotonic wall clock and the process CPU clock.
func readClocks() (wall, cpu float64, err error) {
	var wallTS, cpuTS unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &wallTS); err != nil {
		return 0, 0, fmt.Errorf("reading monotonic clock: %w", err)
	}
	if err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &cpuTS); err != nil {
		return 0, 0, fmt.Errorf("reading process CPU clock: %w", err)
	}
	return timespecToSeconds(wallTS), timespecToSeconds(cpuTS), nil
}

// Start begins a measurement. Returns ErrRunning if the timer is already
// running.
func (t *Timer) Start() error {
	if t.running {
		return ErrRunning
	}
	wall, cpu, err := readClocks()
	if err != nil {
		return err
	}
	t.wallStartSeconds = wall
	t.cpuStartSeconds = cpu
	t.running = true
	return nil
}

// Restart resets the start point of a running measurement. Returns
// ErrNotRunning if the timer is not running.
func (t *Timer) Restart() error {
	if !t.running {
		return ErrNotRunning
	}
	wall, cpu, err := readClocks()
	if err != nil {
		return err
	}
	t.wallStartSeconds = wall
	t.cpuStartSeconds = cpu
	return nil
}

// Stop ends a measurement. Returns ErrNotRunning if the timer is not
// running.
func (t *Timer) Stop() error {
	if !t.running {
		return ErrNotRunning
	}
	wall, cpu, err := readClocks()
	if err != nil {
		return err
	}
	t.wallEndSeconds = wall
	t.cpuEndSeconds = cpu
	t.running = false
	return nil
}

// IsRunning reports whether the timer is currently running.
func (t *Timer) IsRunning() bool {
	return t.running
}

// adjust scales an elapsed time in seconds to the unit chosen by magnitude:
// < 1us reports nanoseconds, < 1ms microseconds, < 1s milliseconds,
// < 60s seconds, < 3600s minutes, otherwise hours.
func adjust(elapsedSeconds float64) interfaces.Measurement {
	switch {
	case elapsedSeconds < 1.0/microsecondsPerSecond:
		return interfaces.Measurement{Time: elapsedSeconds * nanosecondsPerSecond, Unit: interfaces.TimeUnitNanoseconds}
	case elapsedSeconds < 1.0/millisecondsPerSecond:
		return interfaces.Measurement{Time: elapsedSeconds * microsecondsPerSecond, Unit: interfaces.TimeUnitMicroseconds}
	case elapsedSeconds < 1.0:
		return interfaces.Measurement{Time: elapsedSeconds * millisecondsPerSecond, Unit: interfaces.TimeUnitMilliseconds}
	case elapsedSeconds < secondsPerMinute:
		return interfaces.Measurement{Time: elapsedSeconds, Unit: interfaces.TimeUnitSeconds}
	case elapsedSeconds < secondsPerHour:
		return interfaces.Measurement{Time: elapsedSeconds / secondsPerMinute, Unit: interfaces.TimeUnitMinutes}
	default:
		return interfaces.Measurement{Time: elapsedSeconds / secondsPerHour, Unit: interfaces.TimeUnitHours}
	}
}

// WallTime returns the elapsed wall time of the last completed measurement.
// Returns ErrRunning if the timer has not been stopped yet.
func (t *Timer) WallTime() (interfaces.Measurement, error) {
	if t.running {
		return interfaces.Measurement{}, ErrRunning
	}
	return adjust(t.wallEndSeconds - t.wallStartSeconds), nil
}

// CPUTime returns the elapsed process CPU time of the last completed
// measurement. Returns ErrRunning if the timer has not been stopped yet.
func (t *Timer) CPUTime() (interfaces.Measurement, error) {
	if t.running {
		return interfaces.Measurement{}, ErrRunning
	}
	return adjust(t.cpuEndSeconds - t.cpuStartSeconds), nil
}
