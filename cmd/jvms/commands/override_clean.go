package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var overrideCleanForce bool

func init() {
	overrideCleanCmd.Flags().BoolVarP(&overrideCleanForce, "force", "f", false,
		"save even if the configuration is invalid")
}

var overrideCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove overrides for deleted directories",
	Long: `Remove every override whose directory no longer exists on disk,
keeping the rest in their original order.`,
	Example: `  # Drop overrides for projects that were deleted
  jvms override clean

See Also: jvms override list, jvms override remove`,
	RunE: runOverrideClean,
}

func runOverrideClean(_ *cobra.Command, _ []string) error {
	store, cfg, err := loadRegistry()
	if err != nil {
		return err
	}

	removed := cfg.CleanOverrides()
	if len(removed) == 0 {
		fmt.Println("No stale overrides.")
		return nil
	}

	if err := store.Save(cfg, overrideCleanForce); err != nil {
		return err
	}

	for _, o := range removed {
		fmt.Printf("Removed override for %s (toolchain %s)\n", o.Path, o.Toolchain)
	}
	return nil
}
