// Package config provides configuration management for clash.
package config

import "time"

// Config holds all configuration options for a comparison.
type Config struct {
	// Benchmark
	Commands []string      `json:"commands"`
	Runs     int           `json:"runs"`
	Warmup   int           `json:"warmup"`
	Timeout  time.Duration `json:"timeout"` // 0 = no kill policy
	UseShell bool          `json:"use_shell"`

	// Measurement
	SampleInterval time.Duration `json:"sample_interval"`

	// Output
	ExportPath string `json:"export_path"`
	NoTUI      bool   `json:"no_tui"`

	// Observability
	MetricsAddr string `json:"metrics_addr"` // "" = disabled
	Verbose     bool   `json:"verbose"`
	LogFormat   string `json:"log_format"` // json, text
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		// Benchmark
		Runs:    5,
		Warmup:  0,
		Timeout: 0, // A hung child stalls the comparison; opt in to the kill.

		// Measurement
		SampleInterval: 30 * time.Millisecond,

		// Observability
		MetricsAddr: "",
		Verbose:     false,
		LogFormat:   "text",
	}
}
