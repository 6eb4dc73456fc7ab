package cli

import (
	"github.com/c4framework/c4validate/internal/cli/shared"
)

// Exit codes for the c4validate CLI (re-exported from shared)
const (
	// ExitSuccess indicates the framework passed (or only produced warnings)
	ExitSuccess = shared.ExitSuccess

	// ExitFailure indicates errors were found, or the arguments were invalid
	ExitFailure = shared.ExitFailure
)

// NewExitError creates a new exit error with the given code (re-exported from shared).
func NewExitError(code int) error {
	return shared.NewExitError(code)
}

// ExitCode returns the exit code from an error (re-exported from shared).
func ExitCode(err error) int {
	return shared.ExitCode(err)
}
