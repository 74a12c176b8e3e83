// Package logging provides structured logging for clash.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger creates a structured logger writing to stderr.
// Format should be "text" or "json"; verbose enables debug level with
// source locations.
func NewLogger(format string, verbose bool) *slog.Logger {
	return NewLoggerWithWriter(os.Stderr, format, verbose)
}

// NewLoggerWithWriter creates a logger that writes to a custom writer.
// Passing io.Discard silences logging entirely, which the live progress
// display relies on to keep the terminal clean.
func NewLoggerWithWriter(w io.Writer, format string, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: verbose,
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		// A benchmarking CLI talks to a human; text is the default.
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// SetDefault sets the default logger for the slog package.
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}
