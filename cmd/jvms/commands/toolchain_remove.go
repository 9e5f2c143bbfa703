package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toolchainRemoveForce bool

func init() {
	toolchainRemoveCmd.Flags().BoolVarP(&toolchainRemoveForce, "force", "f", false,
		"save even if the configuration is invalid")
}

var toolchainRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a registered toolchain",
	Long: `Remove a toolchain from the registry. The JDK on disk is untouched.

Removing a toolchain that is still the default or still referenced by an
override leaves the configuration invalid; the save is refused unless
--force is given.`,
	Example: `  # Remove toolchain 8
  jvms toolchain remove 8

  # Remove it even though it is still the default
  jvms toolchain remove 8 --force

See Also: jvms toolchain list, jvms override clean`,
	Args: cobra.ExactArgs(1),
	RunE: runToolchainRemove,
}

func runToolchainRemove(_ *cobra.Command, args []string) error {
	name := args[0]

	store, cfg, err := loadRegistry()
	if err != nil {
		return err
	}

	if err := requireToolchain(cfg, name); err != nil {
		return err
	}

	cfg.RemoveToolchain(name)
	if err := store.Save(cfg, toolchainRemoveForce); err != nil {
		return err
	}

	fmt.Printf("Removed toolchain %s\n", name)
	return nil
}
