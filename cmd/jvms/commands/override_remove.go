package commands

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/jvms/internal/paths"
)

var overrideRemoveForce bool

func init() {
	overrideRemoveCmd.Flags().BoolVarP(&overrideRemoveForce, "force", "f", false,
		"save even if the configuration is invalid")
}

var overrideRemoveCmd = &cobra.Command{
	Use:   "remove [path]",
	Short: "Remove a directory override",
	Long: `Remove the override for a directory (by default the current one).
Removing an override that does not exist is not an error.`,
	Example: `  # Unpin the current directory
  jvms override remove

  # Unpin another directory
  jvms override remove ~/work/legacy

See Also: jvms override set, jvms override clean`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOverrideRemove,
}

func runOverrideRemove(_ *cobra.Command, args []string) error {
	store, cfg, err := loadRegistry()
	if err != nil {
		return err
	}

	var dir string
	if len(args) == 1 {
		dir = args[0]
	} else {
		dir, err = os.Getwd()
		if err != nil {
			return errors.Wrap(err, "getting working directory")
		}
	}

	if err := cfg.RemoveOverride(dir); err != nil {
		return err
	}
	if err := store.Save(cfg, overrideRemoveForce); err != nil {
		return err
	}

	abs, err := paths.Absolutize(dir)
	if err != nil {
		return err
	}
	fmt.Printf("Removed override for %s\n", abs)
	return nil
}
