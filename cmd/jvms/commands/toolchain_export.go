package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/jvms/internal/paths"
	"github.com/thoreinstein/jvms/pkg/fileutil"
)

var toolchainExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the toolchain inventory as TOML",
	Long: `Write the registered toolchains and the default toolchain name as TOML,
to stdout or to a file. Directory overrides are not exported; they pin
machine-local paths.`,
	Example: `  # Print the inventory
  jvms toolchain export

  # Write it to a file
  jvms toolchain export toolchains.toml

See Also: jvms toolchain import`,
	Args: cobra.MaximumNArgs(1),
	RunE: runToolchainExport,
}

func runToolchainExport(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadRegistry()
	if err != nil {
		return err
	}

	data, err := cfg.ExportTOML()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	dest, err := paths.Absolutize(args[0])
	if err != nil {
		return err
	}
	if err := fileutil.AtomicWriteFile(dest, data, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Exported %d toolchain(s) to %s\n", len(cfg.Toolchains), dest)
	return nil
}
