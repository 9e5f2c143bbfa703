package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/jvms/pkg/fileutil"
)

var toolchainImportForce bool

func init() {
	toolchainImportCmd.Flags().BoolVarP(&toolchainImportForce, "force", "f", false,
		"save even if the configuration is invalid")
}

var toolchainImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import toolchains from a TOML export",
	Long: `Merge the toolchains from a file produced by "jvms toolchain export"
into the registry. An imported name replaces an existing entry with the
same name. The export's default is adopted only when no default is set.

Imported homes usually point at paths from another machine; the save is
refused when they do not exist here, unless --force is given.`,
	Example: `  # Merge a colleague's inventory
  jvms toolchain import toolchains.toml

  # Keep entries whose homes are not installed yet
  jvms toolchain import toolchains.toml --force

See Also: jvms toolchain export, jvms toolchain list`,
	Args: cobra.ExactArgs(1),
	RunE: runToolchainImport,
}

func runToolchainImport(_ *cobra.Command, args []string) error {
	data, err := fileutil.ReadFileWithLimit(args[0])
	if err != nil {
		return err
	}

	store, cfg, err := loadRegistry()
	if err != nil {
		return err
	}

	names, err := cfg.ImportTOML(data)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("Nothing to import.")
		return nil
	}

	if err := store.Save(cfg, toolchainImportForce); err != nil {
		return err
	}

	sort.Strings(names)
	fmt.Printf("Imported %d toolchain(s): %s\n", len(names), strings.Join(names, ", "))
	return nil
}
