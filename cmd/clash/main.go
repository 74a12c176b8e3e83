// Package main provides the clash CLI entry point.
//
// clash runs two or more commands head-to-head, measuring wall-clock
// time and peak memory per run, and prints a comparative report.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/clash-bench/clash/internal/command"
	"github.com/clash-bench/clash/internal/compare"
	"github.com/clash-bench/clash/internal/config"
	"github.com/clash-bench/clash/internal/logging"
	"github.com/clash-bench/clash/internal/metrics"
	"github.com/clash-bench/clash/internal/orchestrator"
	"github.com/clash-bench/clash/internal/preflight"
	"github.com/clash-bench/clash/internal/report"
	"github.com/clash-bench/clash/internal/runner"
	"github.com/clash-bench/clash/internal/tui"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/clash
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Handle version flag early (before flag parsing)
	if len(os.Args) > 1 {
		arg := os.Args[1]
		if arg == "-version" || arg == "--version" || arg == "version" {
			fmt.Printf("clash %s\n", version)
			return 0
		}
	}

	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		return 1
	}

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 1
	}

	// The live display owns the terminal while running; suppress logs
	// so they cannot tear the frame.
	useTUI := !cfg.NoTUI && isatty.IsTerminal(os.Stdout.Fd())
	var logger *slog.Logger
	if useTUI {
		logger = logging.NewLoggerWithWriter(io.Discard, cfg.LogFormat, false)
	} else {
		logger = logging.NewLogger(cfg.LogFormat, cfg.Verbose)
	}
	logging.SetDefault(logger)

	logger.Info("starting",
		"version", version,
		"commands", len(cfg.Commands),
		"runs", cfg.Runs,
		"warmup", cfg.Warmup,
		"interval", cfg.SampleInterval.String(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional Prometheus endpoint for long-running comparisons.
	var collector *metrics.Collector
	if cfg.MetricsAddr != "" {
		collector = metrics.NewCollector(version, len(cfg.Commands))
		server := metrics.NewServer(cfg.MetricsAddr, logger)
		if err := server.Start(); err != nil {
			logger.Error("metrics_server_failed", "error", err)
			return 1
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	executor := runner.New(runner.Config{
		SampleInterval: cfg.SampleInterval,
		Timeout:        cfg.Timeout,
		Logger:         logger,
	})

	var results []*compare.CommandResult
	if useTUI {
		results, err = runWithTUI(ctx, cfg, logger, executor, collector)
	} else {
		results, err = runPlain(ctx, cfg, logger, executor, collector)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	rep, err := compare.Compare(results)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Print(report.Render(rep))

	if cfg.ExportPath != "" {
		if err := report.Export(cfg.ExportPath, results); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("  ✓ Results exported to %s\n\n", cfg.ExportPath)
	}

	return 0
}

// runPlain drives the comparison with line-based progress output.
func runPlain(ctx context.Context, cfg *config.Config, logger *slog.Logger, executor orchestrator.RunExecutor, collector *metrics.Collector) ([]*compare.CommandResult, error) {
	fmt.Println()
	fmt.Println("  ⚔  clash — benchmark comparator")
	fmt.Println()

	specs := make([]command.Spec, len(cfg.Commands))
	for i, raw := range cfg.Commands {
		specs[i] = command.Spec{Raw: raw, UseShell: cfg.UseShell}
	}
	if pf := preflight.RunAll(specs); !pf.Passed {
		preflight.PrintResults(pf, func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format, args...)
		})
	}

	callbacks := orchestrator.Callbacks{
		OnCommandStart: func(index int, spec command.Spec) {
			fmt.Printf("  [%d] Benchmarking: %s\n", index+1, spec.Label())
		},
		OnRun: func(index, run int, warmup bool, sample runner.Sample) {
			if collector != nil {
				collector.RecordRun(cfg.Commands[index], warmup, sample.Duration, sample.PeakMemoryBytes, sample.Succeeded)
			}
			if warmup {
				fmt.Printf("      warmup %d/%d\n", run+1, cfg.Warmup)
			} else {
				fmt.Printf("      run %d/%d\n", run+1, cfg.Runs)
			}
		},
		OnCommandDone: func(index int, result *compare.CommandResult) {
			if result.FailureReason != "" {
				fmt.Fprintf(os.Stderr, "  Error: %s\n", result.FailureReason)
			} else if n := result.FailedRuns(); n > 0 {
				fmt.Fprintf(os.Stderr, "  Warning: %d/%d runs exited with non-zero status\n",
					n, len(result.Samples))
			}
		},
	}

	orch := orchestrator.New(cfg, logger, executor, callbacks)
	return orch.Run(ctx)
}

// runWithTUI drives the comparison behind a Bubble Tea progress display.
func runWithTUI(ctx context.Context, cfg *config.Config, logger *slog.Logger, executor orchestrator.RunExecutor, collector *metrics.Collector) ([]*compare.CommandResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	labels := make([]string, len(cfg.Commands))
	for i, raw := range cfg.Commands {
		labels[i] = command.Spec{Raw: raw}.Label()
	}

	p := tea.NewProgram(tui.New(labels, cfg.Runs, cfg.Warmup, cancel))

	callbacks := orchestrator.Callbacks{
		OnCommandStart: func(index int, spec command.Spec) {
			p.Send(tui.CommandStartMsg{Index: index})
		},
		OnRun: func(index, run int, warmup bool, sample runner.Sample) {
			if collector != nil {
				collector.RecordRun(cfg.Commands[index], warmup, sample.Duration, sample.PeakMemoryBytes, sample.Succeeded)
			}
			p.Send(tui.RunMsg{Index: index, Warmup: warmup, Succeeded: sample.Succeeded})
		},
		OnCommandDone: func(index int, result *compare.CommandResult) {
			p.Send(tui.CommandDoneMsg{
				Index:         index,
				FailedRuns:    result.FailedRuns(),
				FailureReason: result.FailureReason,
			})
		},
	}

	orch := orchestrator.New(cfg, logger, executor, callbacks)

	var results []*compare.CommandResult
	var runErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		results, runErr = orch.Run(ctx)
		p.Send(tui.DoneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("progress display: %w", err)
	}

	// The display quit: either the comparison finished or the user
	// aborted; cancellation makes the orchestrator return promptly.
	// Join before reading results.
	cancel()
	<-done

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return results, runErr
	}
	return results, nil
}
