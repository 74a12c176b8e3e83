// Package memsample polls a running process's resident memory and
// reduces the observations to a peak value.
package memsample

import (
	"errors"

	"github.com/shirou/gopsutil/v4/process"
)

// ErrProcessGone signals that the sampled process has exited.
// Backends map their platform-specific "no such process" errors to this
// so the sampler can tell a dead process from a transient poll failure.
var ErrProcessGone = errors.New("process has exited")

// Backend reads the current resident set size of a process.
// Implementations vary per OS; the polling and reduction logic does not.
type Backend interface {
	// Sample returns the process's current RSS in bytes.
	// It returns ErrProcessGone once the process no longer exists.
	Sample(pid int32) (uint64, error)
}

// ProcessBackend samples RSS via gopsutil, which abstracts the
// platform-specific accounting (procfs on Linux, sysctl on Darwin, ...).
type ProcessBackend struct{}

// Sample implements Backend.
func (ProcessBackend) Sample(pid int32) (uint64, error) {
	p, err := process.NewProcess(pid)
	if err != nil {
		if errors.Is(err, process.ErrorProcessNotRunning) {
			return 0, ErrProcessGone
		}
		return 0, err
	}
	info, err := p.MemoryInfo()
	if err != nil {
		if errors.Is(err, process.ErrorProcessNotRunning) {
			return 0, ErrProcessGone
		}
		return 0, err
	}
	return info.RSS, nil
}
