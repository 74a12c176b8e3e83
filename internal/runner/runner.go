package runner

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"time"

	"github.com/clash-bench/clash/internal/command"
	"github.com/clash-bench/clash/internal/memsample"
)

// Config holds configuration for creating a new Executor.
type Config struct {
	// SampleInterval is the memory polling cadence.
	// Zero means memsample.DefaultInterval.
	SampleInterval time.Duration

	// Timeout kills a run that exceeds it. Zero disables the kill
	// policy, in which case a hung child stalls the whole comparison.
	Timeout time.Duration

	// Backend samples resident memory. Nil means the platform default.
	Backend memsample.Backend

	Logger *slog.Logger
}

// Executor performs single benchmarked runs.
//
// Exactly two concurrent entities exist per active run: the goroutine
// blocked in Wait and the memory sampler. The executor joins the sampler
// before reading its peak, so the emitted Sample never races a late poll.
type Executor struct {
	interval time.Duration
	timeout  time.Duration
	backend  memsample.Backend
	logger   *slog.Logger
}

// New creates an Executor with the given configuration.
func New(cfg Config) *Executor {
	backend := cfg.Backend
	if backend == nil {
		backend = memsample.ProcessBackend{}
	}
	interval := cfg.SampleInterval
	if interval <= 0 {
		interval = memsample.DefaultInterval
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		interval: interval,
		timeout:  cfg.Timeout,
		backend:  backend,
		logger:   logger,
	}
}

// Run executes the command once and returns its measurement.
//
// A nonzero exit status is not an error: the sample is recorded with
// Succeeded=false and whatever duration and memory were measured. Only a
// failure to start the process at all returns a *SpawnError.
func (e *Executor) Run(ctx context.Context, spec command.Spec) (Sample, error) {
	argv, err := spec.Argv()
	if err != nil {
		return Sample{}, &SpawnError{Command: spec.Raw, Err: err}
	}

	runCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	// Stdout/Stderr left nil: the child writes to the null device, so
	// output volume cannot skew the measurement.

	// The start timestamp is captured immediately before Start so fixed
	// OS launch latency lands uniformly on every command compared.
	start := time.Now()
	if err := cmd.Start(); err != nil {
		return Sample{}, &SpawnError{Command: spec.Raw, Err: err}
	}

	sampler := memsample.Start(e.backend, int32(cmd.Process.Pid), e.interval, e.logger)

	waitErr := cmd.Wait()
	elapsed := time.Since(start)

	// Join before reading the peak: no sample can arrive after this.
	sampler.Stop()
	peak, lowConfidence := sampler.Peak()

	exitCode := 0
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
	}
	if runCtx.Err() != nil && ctx.Err() == nil {
		e.logger.Warn("run_timed_out", "command", spec.Label(), "timeout", e.timeout.String())
	}

	return Sample{
		Duration:            elapsed,
		PeakMemoryBytes:     peak,
		ExitCode:            exitCode,
		Succeeded:           exitCode == 0,
		MemoryLowConfidence: lowConfidence,
	}, nil
}
