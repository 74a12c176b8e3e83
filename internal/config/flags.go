package config

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses command-line flags and returns a Config.
// Positional arguments after the flags are the commands to benchmark.
func ParseFlags() (*Config, error) {
	cfg := DefaultConfig()

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `clash - benchmark comparator

Run commands head-to-head and compare their performance.
Measures execution time AND peak memory usage.

Usage:
  clash [flags] <command 1> <command 2> [command N...]

Benchmark Flags:
`)
		printFlagCategory([]string{"runs", "warmup", "timeout", "shell"})

		fmt.Fprintf(os.Stderr, "\nMeasurement:\n")
		printFlagCategory([]string{"interval"})

		fmt.Fprintf(os.Stderr, "\nOutput:\n")
		printFlagCategory([]string{"export", "no-tui"})

		fmt.Fprintf(os.Stderr, "\nObservability:\n")
		printFlagCategory([]string{"metrics", "v", "log-format"})

		fmt.Fprintf(os.Stderr, `
Examples:
  # Compare two sort implementations, 10 runs each
  clash -runs 10 "./sort_rs input.txt" "python3 sort.py input.txt"

  # Warm the page cache first, export raw results
  clash -warmup 3 -export results.json "grep -r foo ." "rg foo"

  # Full shell features (pipes, &&) via /bin/sh
  clash -shell "gzip -k big.log && rm big.log.gz" "zstd -k big.log && rm big.log.zst"

`)
	}

	// Benchmark flags
	flag.IntVar(&cfg.Runs, "runs", cfg.Runs, "Number of measured runs per command")
	flag.IntVar(&cfg.Warmup, "warmup", cfg.Warmup, "Number of discarded warmup runs per command")
	flag.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Kill a run after this long (0 = never)")
	flag.BoolVar(&cfg.UseShell, "shell", cfg.UseShell, "Run commands through /bin/sh -c")

	// Measurement
	flag.DurationVar(&cfg.SampleInterval, "interval", cfg.SampleInterval, "Memory polling cadence")

	// Output
	flag.StringVar(&cfg.ExportPath, "export", cfg.ExportPath, "Export raw results and statistics to a JSON file")
	flag.BoolVar(&cfg.NoTUI, "no-tui", cfg.NoTUI, "Plain progress output instead of the live display")

	// Observability
	flag.StringVar(&cfg.MetricsAddr, "metrics", cfg.MetricsAddr, "Serve Prometheus metrics on this address while benchmarking")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Verbose (debug) logging")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, `Log format: "text" or "json"`)

	flag.Parse()

	cfg.Commands = flag.Args()

	return cfg, nil
}

// printFlagCategory prints usage lines for a named subset of flags.
func printFlagCategory(names []string) {
	for _, name := range names {
		f := flag.Lookup(name)
		if f == nil {
			continue
		}
		fmt.Fprintf(os.Stderr, "  -%-12s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" && f.DefValue != "0s" {
			fmt.Fprintf(os.Stderr, " (default %s)", f.DefValue)
		}
		fmt.Fprintln(os.Stderr)
	}
}
