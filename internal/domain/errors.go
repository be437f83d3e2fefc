package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrEmptyCommand       = errors.New("command cannot be empty")
	ErrInvalidCommandLine = errors.New("invalid command line")
	ErrInvalidScript      = errors.New("invalid shell script")
	ErrCommandFailed      = errors.New("command failed")
	ErrInvalidEncoding    = errors.New("invalid byte sequence for encoding")
	ErrUnknownEncoding    = errors.New("unknown text encoding")
	ErrFileTooLarge       = errors.New("file exceeds size limit")
	ErrEmptyKey           = errors.New("environment variable name cannot be empty")
	ErrEmptyPath          = errors.New("path cannot be empty")
	ErrConfigExists       = errors.New("config file already exists")
)

// CommandError reports a command that ran but did not succeed.
// Err is the underlying *exec.ExitError (or start error) so callers can use errors.As.
type CommandError struct {
	Err      error
	Command  string
	ExitCode int
}

func (e *CommandError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("command %q: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrCommandFailed.
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}
