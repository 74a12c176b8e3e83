// Package compare ranks benchmarked commands by time and memory and
// computes the relative ratios between them.
package compare

import (
	"github.com/clash-bench/clash/internal/command"
	"github.com/clash-bench/clash/internal/runner"
)

// CommandResult collects everything observed for one benchmarked command.
// The orchestrator appends samples in run order; once the command's runs
// finish (or it is aborted) the result is frozen.
type CommandResult struct {
	Spec    command.Spec
	Samples []runner.Sample

	// FailureReason is set when the command could not complete its
	// configured runs, typically a spawn failure. A command with a
	// FailureReason is shown with it, never silently dropped.
	FailureReason string
}

// SuccessfulDurations returns the duration in seconds of every
// successful sample, in run order.
func (r *CommandResult) SuccessfulDurations() []float64 {
	out := make([]float64, 0, len(r.Samples))
	for _, s := range r.Samples {
		if s.Succeeded {
			out = append(out, s.Duration.Seconds())
		}
	}
	return out
}

// SuccessfulMemories returns the peak RSS in bytes of every successful
// sample, in run order.
func (r *CommandResult) SuccessfulMemories() []float64 {
	out := make([]float64, 0, len(r.Samples))
	for _, s := range r.Samples {
		if s.Succeeded {
			out = append(out, float64(s.PeakMemoryBytes))
		}
	}
	return out
}

// FailedRuns counts samples that exited nonzero.
func (r *CommandResult) FailedRuns() int {
	n := 0
	for _, s := range r.Samples {
		if !s.Succeeded {
			n++
		}
	}
	return n
}
