package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/jvms/internal/install"
	"github.com/thoreinstein/jvms/internal/paths"
)

func init() {
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install <dir>",
	Short: "Install jvms into a directory",
	Long: `Copy the running binary into <dir> and create one hard link per
impersonated Java tool name (java, javac, jar, ...), all pointing at the
same file. Put <dir> on PATH ahead of any real JDK to activate the shims.

Installing over an existing installation replaces the binaries and keeps
the configuration file.`,
	Example: `  # Install into ~/.jvms/bin
  jvms install ~/.jvms/bin

See Also: jvms toolchain add, jvms default`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func runInstall(_ *cobra.Command, args []string) error {
	dest, err := paths.Absolutize(args[0])
	if err != nil {
		return err
	}

	inst := install.New(dest)
	if err := inst.InstallBinaries(slog.Default()); err != nil {
		return err
	}

	fmt.Printf("Installed jvms to %s\n", inst.Dir())
	return nil
}
