// Package errors provides error handling conventions for the jvms CLI.
//
// This package defines sentinel errors for the failure classes the tool can
// hit, an ExitError type for CLI exit code handling, and exit code constants
// following standard Unix conventions.
//
// # Error Taxonomy
//
// Three classes of deterministic failures exist, and all of them bubble to
// the top of the call chain unchanged (there is no local recovery or retry):
//
//   - I/O failures (file open/read/write, process spawn), wrapped with
//     context via cockroachdb/errors
//   - invalid-configuration errors ([ErrInvalidConfig], [ErrUnknownToolchain],
//     [ErrNoToolchain]) carrying a human-readable reason
//   - malformed persisted state ([ErrMalformedConfig]), distinct from plain
//     I/O failures
//
// Callers check for a specific condition with [errors.Is]:
//
//	if errors.Is(err, jvmserrors.ErrNoToolchain) {
//	    // nothing resolved for this directory
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): command completed successfully
//   - ExitUser (1): user-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): system-related error (I/O, spawn failure, permissions)
//
// A shim invocation that reaches the delegate propagates the delegate's own
// exit code instead.
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. main unwraps it with [errors.As] to pick the process exit
// status, which guarantees failures are visible as a non-zero exit code.
package errors
