// Package main is the entry point for jvms and all of its shims.
//
// The same binary is installed once and hard-linked under every Java tool
// name it impersonates. Which personality runs is decided here, once, from
// the executable's own file name: a catalog name dispatches to the resolved
// toolchain's real tool, anything else runs the jvms CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/jvms/cmd/jvms/commands"
	jvmserrors "github.com/thoreinstein/jvms/internal/errors"
	"github.com/thoreinstein/jvms/internal/install"
	"github.com/thoreinstein/jvms/internal/logging"
	"github.com/thoreinstein/jvms/internal/shim"
)

func main() {
	os.Exit(run())
}

func run() int {
	exe, err := os.Executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return jvmserrors.ExitSystem
	}

	if id := shim.Detect(exe); id.Mode == shim.ModeShim {
		return runShim(id, install.New(filepath.Dir(exe)))
	}

	if err := commands.Execute(); err != nil {
		reportError(err)
		var exitErr *jvmserrors.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return jvmserrors.ExitUser
	}
	return jvmserrors.ExitSuccess
}

func runShim(id shim.Identity, inst install.Installation) int {
	dispatcher := shim.NewDispatcher(inst.Store(), shimLogger())

	code, err := dispatcher.Run(id.Tool, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		switch {
		case errors.Is(err, jvmserrors.ErrNoToolchain),
			errors.Is(err, jvmserrors.ErrInvalidConfig),
			errors.Is(err, jvmserrors.ErrMalformedConfig):
			return jvmserrors.ExitUser
		default:
			return jvmserrors.ExitSystem
		}
	}
	return code
}

// shimLogger builds the logger for shim mode. Shims stay quiet unless
// JVMS_DEBUG is set; there are no flags to parse in that mode, every
// argument belongs to the delegate.
func shimLogger() *slog.Logger {
	level := slog.LevelWarn
	if v := os.Getenv("JVMS_DEBUG"); v == "1" || v == "true" {
		level = slog.LevelDebug
	}
	return logging.New(logging.Config{
		Level:  level,
		Format: logging.FormatText,
		Output: os.Stderr,
	})
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var exitErr *jvmserrors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", exitErr.Suggestion)
	}
}
