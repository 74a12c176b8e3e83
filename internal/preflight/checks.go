// Package preflight provides startup validation checks.
package preflight

import (
	"fmt"
	"os/exec"

	"github.com/clash-bench/clash/internal/command"
)

// Check represents the result of a single preflight check.
type Check struct {
	Name    string // Name of the check
	Passed  bool   // Whether the check passed
	Message string // Additional context
}

// Result holds the results of all preflight checks.
type Result struct {
	Checks []Check
	Passed bool
}

// String returns a human-readable summary of the check.
func (c Check) String() string {
	status := "✓"
	if !c.Passed {
		status = "✗"
	}
	return fmt.Sprintf("  %s %s: %s", status, c.Name, c.Message)
}

// RunAll resolves every command's executable before any benchmarking
// starts, so a typo surfaces immediately instead of after the other
// commands' runs. Shell-mode commands check /bin/sh instead, since the
// shell decides what the string means.
func RunAll(specs []command.Spec) *Result {
	result := &Result{
		Checks: make([]Check, 0, len(specs)),
		Passed: true,
	}

	for _, spec := range specs {
		check := checkExecutable(spec)
		result.Checks = append(result.Checks, check)
		if !check.Passed {
			result.Passed = false
		}
	}

	return result
}

func checkExecutable(spec command.Spec) Check {
	check := Check{Name: spec.Label()}

	argv, err := spec.Argv()
	if err != nil {
		check.Message = err.Error()
		return check
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		check.Message = fmt.Sprintf("%q not found in PATH", argv[0])
		return check
	}

	check.Passed = true
	check.Message = path
	return check
}

// PrintResults prints all check results via the given printf function.
func PrintResults(result *Result, printf func(format string, args ...any)) {
	printf("Preflight checks:\n")
	for _, check := range result.Checks {
		printf("%s\n", check.String())
	}
	if !result.Passed {
		printf("  (commands that cannot start are still reported in the comparison)\n")
	}
	printf("\n")
}
