// Package logging provides slog-based logging for the jvms CLI.
//
// The console handler is TTY-aware: output is colorized only when stderr is
// a terminal and neither NO_COLOR nor TERM=dumb is set. JSON output is
// available via --log-format json, and --log-file tees records to a file in
// JSON through [MultiHandler].
//
// Tests use [ForTest] to route log output through testing.T:
//
//	func TestSomething(t *testing.T) {
//	    logger := logging.ForTest(t)
//	    ...
//	}
package logging
