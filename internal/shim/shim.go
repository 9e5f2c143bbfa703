package shim

import (
	"path/filepath"
	"strings"
)

// catalog lists the Java tool names the installed binary impersonates.
// Installing jvms hard-links one file per name to the primary binary, so a
// single compiled artifact behaves as any of these tools purely by
// inspecting its own invocation name.
var catalog = []string{
	"jar",
	"java",
	"javac",
	"javadoc",
	"javah",
	"javap",
	"javaw",
}

// Tools returns the shim catalog.
func Tools() []string {
	out := make([]string, len(catalog))
	copy(out, catalog)
	return out
}

// Mode is the process identity, selected once at startup and never changed
// during a run.
type Mode int

const (
	// ModePrimary means the binary was invoked under its own name and
	// control passes to the CLI layer.
	ModePrimary Mode = iota

	// ModeShim means the binary was invoked under a catalog name and the
	// dispatcher delegates to the resolved toolchain's real tool.
	ModeShim
)

// Identity is the tagged result of identity detection. Tool is only set in
// ModeShim.
type Identity struct {
	Mode Mode
	Tool string
}

// Detect determines the process identity from the executable path. The file
// name's stem (extension stripped) is compared against the catalog; anything
// else is the primary CLI.
func Detect(exePath string) Identity {
	base := filepath.Base(exePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	for _, tool := range catalog {
		if tool == stem {
			return Identity{Mode: ModeShim, Tool: tool}
		}
	}
	return Identity{Mode: ModePrimary}
}
