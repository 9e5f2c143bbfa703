package commands

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/jvms/internal/cli/prompt"
	"github.com/thoreinstein/jvms/internal/paths"
)

var (
	overrideSetForce       bool
	overrideSetInteractive bool
	overrideSetPath        string
)

func init() {
	overrideSetCmd.Flags().BoolVarP(&overrideSetForce, "force", "f", false,
		"save even if the configuration is invalid")
	overrideSetCmd.Flags().BoolVarP(&overrideSetInteractive, "interactive", "i", false,
		"pick the toolchain from a fuzzy finder")
	overrideSetCmd.Flags().StringVar(&overrideSetPath, "path", "",
		"directory to pin (default: current directory)")
}

var overrideSetCmd = &cobra.Command{
	Use:   "set [toolchain]",
	Short: "Pin a directory to a toolchain",
	Long: `Pin a directory (by default the current one) to a toolchain. The pin
applies to the directory and all of its descendants until a more specific
override takes over. An existing pin for the same directory is replaced.`,
	Example: `  # Pin the current project to JDK 11
  jvms override set 11

  # Pin another directory
  jvms override set 17 --path ~/work/legacy

  # Pick the toolchain interactively
  jvms override set --interactive

See Also: jvms override remove, jvms override list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOverrideSet,
}

func runOverrideSet(_ *cobra.Command, args []string) error {
	store, cfg, err := loadRegistry()
	if err != nil {
		return err
	}

	var name string
	switch {
	case len(args) == 1:
		name = args[0]
	case overrideSetInteractive:
		name, err = prompt.SelectToolchain(cfg)
		if err != nil {
			return err
		}
	default:
		return errors.New("a toolchain name or --interactive is required")
	}

	if err := requireToolchain(cfg, name); err != nil {
		return err
	}

	dir := overrideSetPath
	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return errors.Wrap(err, "getting working directory")
		}
	}

	// Replace semantics: the model itself keeps duplicates.
	if err := cfg.RemoveOverride(dir); err != nil {
		return err
	}
	if err := cfg.AddOverride(dir, name); err != nil {
		return err
	}
	if err := store.Save(cfg, overrideSetForce); err != nil {
		return err
	}

	abs, err := paths.Absolutize(dir)
	if err != nil {
		return err
	}
	fmt.Printf("Pinned %s to toolchain %s\n", abs, name)
	return nil
}
