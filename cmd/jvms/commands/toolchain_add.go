package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	jvmserrors "github.com/thoreinstein/jvms/internal/errors"
)

var toolchainAddForce bool

func init() {
	toolchainAddCmd.Flags().BoolVarP(&toolchainAddForce, "force", "f", false,
		"save even if the configuration is invalid")
}

var toolchainAddCmd = &cobra.Command{
	Use:   "add <name> <java-home>",
	Short: "Register a Java toolchain",
	Long: `Register a named toolchain pointing at the JAVA_HOME of an installed
JDK. The home directory is stored as a normalized absolute path; whether
it actually exists is only checked when the configuration is validated on
save.

Adding a name that is already registered is refused; remove it first.`,
	Example: `  # Register JDK 21
  jvms toolchain add 21 /opt/jdk-21

  # Register a home that does not exist yet
  jvms toolchain add 22 /opt/jdk-22-ea --force

See Also: jvms toolchain remove, jvms default`,
	Args: cobra.ExactArgs(2),
	RunE: runToolchainAdd,
}

func runToolchainAdd(_ *cobra.Command, args []string) error {
	name, javaHome := args[0], args[1]

	store, cfg, err := loadRegistry()
	if err != nil {
		return err
	}

	if cfg.HasToolchain(name) {
		return jvmserrors.NewUserError(
			errors.Newf("toolchain %q is already registered", name),
			fmt.Sprintf("Run: jvms toolchain remove %s", name))
	}

	if err := cfg.AddToolchain(name, javaHome); err != nil {
		return err
	}
	if err := store.Save(cfg, toolchainAddForce); err != nil {
		return err
	}

	tc, _ := cfg.Toolchain(name)
	fmt.Printf("Registered toolchain %s (%s)\n", name, tc.JavaHome)
	return nil
}
