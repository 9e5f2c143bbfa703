// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"
	"golang.org/x/term"

	"github.com/thoreinstein/jvms/internal/toolchain"
)

// Sentinel errors for toolchain selection.
var (
	ErrNoToolchains       = errors.New("no toolchains to select from")
	ErrNotATerminal       = errors.New("interactive selection requires a terminal")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// SelectToolchain presents a fuzzy finder over the registered toolchains and
// returns the chosen name. The preview pane shows the java home.
//
// Returns:
//   - ErrNoToolchains if the registry has no toolchains
//   - ErrNotATerminal if stdin is not a TTY
//   - ErrSelectionCancelled if the user aborts (Esc / Ctrl+C)
func SelectToolchain(cfg *toolchain.Config) (string, error) {
	names := cfg.Names()
	if len(names) == 0 {
		return "", ErrNoToolchains
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", ErrNotATerminal
	}

	idx, err := fuzzyfinder.Find(
		names,
		func(i int) string {
			return names[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			tc, _ := cfg.Toolchain(names[i])
			marker := ""
			if names[i] == cfg.Default {
				marker = " (default)"
			}
			return "Toolchain: " + names[i] + marker + "\nJAVA_HOME: " + tc.JavaHome
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", ErrSelectionCancelled
		}
		return "", errors.Wrap(err, "selecting toolchain")
	}

	return names[idx], nil
}
