package runner

import "fmt"

// SpawnError indicates the command could not be started at all: the
// executable is missing, not executable, or the command string is empty.
// It is fatal to the command's remaining runs but never to the comparison.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %q: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
