package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	toolchainCmd.AddCommand(toolchainAddCmd)
	toolchainCmd.AddCommand(toolchainListCmd)
	toolchainCmd.AddCommand(toolchainRemoveCmd)
	toolchainCmd.AddCommand(toolchainExportCmd)
	toolchainCmd.AddCommand(toolchainImportCmd)
	rootCmd.AddCommand(toolchainCmd)
}

var toolchainCmd = &cobra.Command{
	Use:   "toolchain",
	Short: "Manage registered Java toolchains",
	Long: `Add, remove, list, export, or import the named Java installations
jvms can dispatch to. A toolchain is a name plus the JAVA_HOME directory
of an installed JDK.`,
	Example: `  # Register a toolchain
  jvms toolchain add 21 /opt/jdk-21

  # See what is registered
  jvms toolchain list

See Also: jvms default, jvms override`,
	RunE: runToolchainList,
}
