package tsfy

import (
	"errors"
	"fmt"
)

// Exit codes for the tsfy CLI.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 1
)

// UsageError reports a missing or unknown preset name.
type UsageError struct {
	Preset string   // requested name, empty when none was given
	Known  []string // valid preset names
	Cause  error    // optional underlying parse error
}

func (e *UsageError) Error() string {
	switch {
	case e.Cause != nil:
		return e.Cause.Error()
	case e.Preset == "":
		return "no preset specified"
	default:
		return fmt.Sprintf("unknown preset %q", e.Preset)
	}
}

func (e *UsageError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error.
func (e *UsageError) ExitCode() int {
	return ExitUsage
}

// ErrWriteFailed is returned by the CLI when at least one file could not be
// written.
var ErrWriteFailed = errors.New("some files could not be written")

// IsUsageError reports whether err is, or wraps, a *UsageError.
func IsUsageError(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}

// ExitCode maps an error to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return ExitFailure
}
