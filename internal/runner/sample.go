// Package runner launches a child process, times it, and coordinates the
// concurrent memory sampler to produce one measurement per run.
package runner

import "time"

// Sample is the immutable result of one benchmarked run.
type Sample struct {
	// Duration is the wall-clock time from just before process start to
	// observed exit, measured on the monotonic clock.
	Duration time.Duration

	// PeakMemoryBytes is the highest resident set size observed while
	// the process ran. Zero when the process was too short-lived for
	// any poll to land.
	PeakMemoryBytes uint64

	// ExitCode is the process exit status. -1 when the process was
	// terminated by a signal (including a timeout kill).
	ExitCode int

	// Succeeded is true when the process exited with status zero.
	// Failed runs are still measured and recorded.
	Succeeded bool

	// MemoryLowConfidence marks a run where no memory poll succeeded,
	// so PeakMemoryBytes is a floor (zero), not a real observation.
	MemoryLowConfidence bool
}
