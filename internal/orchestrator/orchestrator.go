// Package orchestrator drives warmup and measured runs for every command
// in a comparison, strictly sequentially.
package orchestrator

import (
	"context"
	"errors"
	"log/slog"

	"github.com/clash-bench/clash/internal/command"
	"github.com/clash-bench/clash/internal/compare"
	"github.com/clash-bench/clash/internal/config"
	"github.com/clash-bench/clash/internal/runner"
)

// RunExecutor performs one benchmarked run of a command.
// Satisfied by *runner.Executor; tests substitute fakes.
type RunExecutor interface {
	Run(ctx context.Context, spec command.Spec) (runner.Sample, error)
}

// Callbacks contains optional callback functions for orchestration
// progress. They are an observable side effect, not required for
// correctness; any field may be nil.
type Callbacks struct {
	// OnCommandStart is called before a command's first warmup run.
	OnCommandStart func(index int, spec command.Spec)

	// OnRun is called after each completed run. Warmup runs report
	// warmup=true and their samples are discarded.
	OnRun func(index, run int, warmup bool, sample runner.Sample)

	// OnCommandDone is called once a command's result is frozen.
	OnCommandDone func(index int, result *compare.CommandResult)
}

// Orchestrator coordinates all runs of a comparison.
//
// Runs of one command never overlap, and commands run one fully before
// the next starts: total benchmarking time is traded for measurement
// fidelity, since concurrent runs would contend for the resources being
// measured.
type Orchestrator struct {
	cfg       *config.Config
	logger    *slog.Logger
	executor  RunExecutor
	callbacks Callbacks
}

// New creates a new Orchestrator.
func New(cfg *config.Config, logger *slog.Logger, executor RunExecutor, callbacks Callbacks) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		logger:    logger,
		executor:  executor,
		callbacks: callbacks,
	}
}

// Run benchmarks every configured command and returns one result per
// command, in input order.
//
// A spawn failure aborts only the remaining runs of that command; its
// result carries the failure reason and the comparison continues. Run
// only returns early when ctx is cancelled.
func (o *Orchestrator) Run(ctx context.Context) ([]*compare.CommandResult, error) {
	results := make([]*compare.CommandResult, 0, len(o.cfg.Commands))

	for i, raw := range o.cfg.Commands {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		spec := command.Spec{Raw: raw, UseShell: o.cfg.UseShell}
		if o.callbacks.OnCommandStart != nil {
			o.callbacks.OnCommandStart(i, spec)
		}

		result := o.runCommand(ctx, i, spec)
		results = append(results, result)

		o.logger.Info("command_finished",
			"command", spec.Label(),
			"samples", len(result.Samples),
			"failed_runs", result.FailedRuns(),
			"failure_reason", result.FailureReason,
		)
		if o.callbacks.OnCommandDone != nil {
			o.callbacks.OnCommandDone(i, result)
		}
	}

	return results, nil
}

// runCommand executes W warmup runs then R measured runs of one command.
func (o *Orchestrator) runCommand(ctx context.Context, index int, spec command.Spec) *compare.CommandResult {
	result := &compare.CommandResult{Spec: spec}

	for w := 0; w < o.cfg.Warmup; w++ {
		sample, err := o.executor.Run(ctx, spec)
		if err != nil {
			result.FailureReason = failureReason(err)
			return result
		}
		if o.callbacks.OnRun != nil {
			o.callbacks.OnRun(index, w, true, sample)
		}
	}

	for r := 0; r < o.cfg.Runs; r++ {
		sample, err := o.executor.Run(ctx, spec)
		if err != nil {
			// Remaining runs are pointless: a missing executable will
			// not appear between runs. Keep what was measured so far.
			result.FailureReason = failureReason(err)
			return result
		}
		result.Samples = append(result.Samples, sample)
		if o.callbacks.OnRun != nil {
			o.callbacks.OnRun(index, r, false, sample)
		}
	}

	return result
}

func failureReason(err error) string {
	var spawnErr *runner.SpawnError
	if errors.As(err, &spawnErr) {
		return spawnErr.Error()
	}
	return err.Error()
}
