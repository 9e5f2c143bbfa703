package commands

import (
	"github.com/cockroachdb/errors"

	jvmserrors "github.com/thoreinstein/jvms/internal/errors"
	"github.com/thoreinstein/jvms/internal/install"
	"github.com/thoreinstein/jvms/internal/paths"
	"github.com/thoreinstein/jvms/internal/toolchain"
)

// currentInstallation returns the installation to operate on: the one
// containing the running binary, unless --install-dir points elsewhere.
func currentInstallation() (install.Installation, error) {
	if installDirFlag != "" {
		dir, err := paths.Absolutize(installDirFlag)
		if err != nil {
			return install.Installation{}, err
		}
		return install.New(dir), nil
	}
	return install.Current()
}

// loadRegistry loads the toolchain registry of the current installation.
func loadRegistry() (*toolchain.Store, *toolchain.Config, error) {
	inst, err := currentInstallation()
	if err != nil {
		return nil, nil, err
	}

	store := inst.Store()
	cfg, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

// requireToolchain fails with a user error when name is not registered.
func requireToolchain(cfg *toolchain.Config, name string) error {
	if !cfg.HasToolchain(name) {
		return jvmserrors.NewUserError(
			errors.Wrapf(jvmserrors.ErrUnknownToolchain, "%s", name),
			"Run: jvms toolchain list")
	}
	return nil
}
