package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	overrideCmd.AddCommand(overrideSetCmd)
	overrideCmd.AddCommand(overrideListCmd)
	overrideCmd.AddCommand(overrideRemoveCmd)
	overrideCmd.AddCommand(overrideCleanCmd)
	rootCmd.AddCommand(overrideCmd)
}

var overrideCmd = &cobra.Command{
	Use:   "override",
	Short: "Manage per-directory toolchain overrides",
	Long: `Pin directories to specific toolchains. An override applies to its
directory and everything beneath it; when several overrides match, the
most specific directory wins. Directories with no override use the
default toolchain.`,
	Example: `  # Pin the current project to JDK 11
  jvms override set 11

  # See all pins
  jvms override list

See Also: jvms default, jvms toolchain list`,
	RunE: runOverrideList,
}
