package errors

import (
	"errors"
	"fmt"
)

// Exit codes for the jvms CLI and its shims. A shim that successfully spawns
// a delegate does not use these; it propagates the delegate's own exit code.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, process spawn, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidConfig indicates the toolchain registry failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMalformedConfig indicates the persisted registry exists but could
	// not be decoded. Distinct from plain I/O failures: the file is there,
	// its content is not usable.
	ErrMalformedConfig = errors.New("malformed configuration file")

	// ErrUnknownToolchain indicates a toolchain name that is not registered.
	ErrUnknownToolchain = errors.New("unknown toolchain")

	// ErrNoToolchain indicates no toolchain resolved for a directory: no
	// override matched and no default is configured.
	ErrNoToolchain = errors.New("no toolchain resolved")
)

// ExitError wraps an error with an exit code and optional suggestion for the CLI.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewConfigError creates an ExitError with ExitUser code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Run: jvms doctor",
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
