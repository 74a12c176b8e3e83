// Package command describes the external commands being benchmarked.
package command

import (
	"errors"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// MaxLabelLength is the longest display label before truncation.
const MaxLabelLength = 30

// ErrEmpty is returned when a command string contains no words.
var ErrEmpty = errors.New("empty command")

// Spec describes one command to benchmark. It is immutable once created
// and owned by the orchestrator for the lifetime of a comparison.
type Spec struct {
	// Raw is the command string exactly as given on the command line.
	Raw string

	// UseShell runs the command through "/bin/sh -c" instead of
	// splitting it into an argv.
	UseShell bool
}

// Argv returns the program and arguments to execute.
//
// In the default mode the raw string is split shell-style (quoting and
// escaping respected, environment variables expanded). In shell mode the
// string is handed to /bin/sh verbatim.
func (s Spec) Argv() ([]string, error) {
	if strings.TrimSpace(s.Raw) == "" {
		return nil, ErrEmpty
	}
	if s.UseShell {
		return []string{"/bin/sh", "-c", s.Raw}, nil
	}
	fields, err := shell.Fields(s.Raw, nil)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrEmpty
	}
	return fields, nil
}

// Label returns a short display name for the command, truncated so wide
// commands do not blow up table layouts.
func (s Spec) Label() string {
	trimmed := strings.TrimSpace(s.Raw)
	if len(trimmed) <= MaxLabelLength {
		return trimmed
	}
	return trimmed[:MaxLabelLength-3] + "..."
}
