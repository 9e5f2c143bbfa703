package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/jvms/internal/cli/prompt"
)

var (
	defaultForce       bool
	defaultInteractive bool
)

func init() {
	defaultCmd.Flags().BoolVarP(&defaultForce, "force", "f", false,
		"save even if the configuration is invalid")
	defaultCmd.Flags().BoolVarP(&defaultInteractive, "interactive", "i", false,
		"pick the toolchain from a fuzzy finder")
	rootCmd.AddCommand(defaultCmd)
}

var defaultCmd = &cobra.Command{
	Use:   "default [name]",
	Short: "Show or set the default toolchain",
	Long: `With no arguments, print the current default toolchain.
With a name, make that toolchain the default used whenever no directory
override matches.`,
	Example: `  # Show the current default
  jvms default

  # Make toolchain 21 the default
  jvms default 21

  # Pick interactively
  jvms default --interactive

See Also: jvms toolchain list, jvms override set`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDefault,
}

func runDefault(_ *cobra.Command, args []string) error {
	store, cfg, err := loadRegistry()
	if err != nil {
		return err
	}

	var name string
	switch {
	case len(args) == 1:
		name = args[0]
	case defaultInteractive:
		name, err = prompt.SelectToolchain(cfg)
		if err != nil {
			return err
		}
	default:
		if cfg.Default == "" {
			fmt.Println("Default toolchain: none")
		} else {
			fmt.Printf("Default toolchain: %s\n", cfg.Default)
		}
		return nil
	}

	if err := requireToolchain(cfg, name); err != nil {
		return err
	}

	cfg.SetDefault(name)
	if err := store.Save(cfg, defaultForce); err != nil {
		return err
	}

	fmt.Printf("Set default toolchain to %s\n", name)
	return nil
}
