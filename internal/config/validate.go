package config

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for errors and inconsistencies.
// Returns nil if valid, or an error describing every problem found.
func Validate(cfg *Config) error {
	var errs []error

	if len(cfg.Commands) < 2 {
		errs = append(errs, ValidationError{
			Field:   "commands",
			Message: fmt.Sprintf("need at least 2 commands to compare, got %d", len(cfg.Commands)),
		})
	}
	for i, cmd := range cfg.Commands {
		if strings.TrimSpace(cmd) == "" {
			errs = append(errs, ValidationError{
				Field:   "commands",
				Message: fmt.Sprintf("command %d is empty", i+1),
			})
		}
	}

	if cfg.Runs < 1 {
		errs = append(errs, ValidationError{
			Field:   "runs",
			Message: "must be at least 1",
		})
	}

	if cfg.Warmup < 0 {
		errs = append(errs, ValidationError{
			Field:   "warmup",
			Message: "must not be negative",
		})
	}

	if cfg.SampleInterval <= 0 {
		errs = append(errs, ValidationError{
			Field:   "interval",
			Message: "must be positive",
		})
	}

	if cfg.Timeout < 0 {
		errs = append(errs, ValidationError{
			Field:   "timeout",
			Message: "must not be negative",
		})
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "json", "text":
	default:
		errs = append(errs, ValidationError{
			Field:   "log_format",
			Message: fmt.Sprintf("must be \"json\" or \"text\", got %q", cfg.LogFormat),
		})
	}

	return errors.Join(errs...)
}
