package toolchain

import (
	"os"

	"github.com/cockroachdb/errors"

	jvmserrors "github.com/thoreinstein/jvms/internal/errors"
)

// Validate checks the registry invariants and returns the first violation:
//
//  1. at least one toolchain is registered
//  2. every toolchain's home directory exists on disk
//  3. a default toolchain is set and references a registered toolchain
//  4. every override references a registered toolchain
//
// All returned errors carry jvmserrors.ErrInvalidConfig in their chain.
// Validate is the only place these invariants are enforced; mutations never
// check them, and Store.Save can be told to skip validation entirely.
func (c *Config) Validate() error {
	if len(c.Toolchains) == 0 {
		return errors.Wrap(jvmserrors.ErrInvalidConfig, "no toolchains are registered")
	}

	// Sorted iteration so the first reported violation is deterministic.
	for _, name := range c.Names() {
		tc := c.Toolchains[name]
		if _, err := os.Stat(tc.JavaHome); err != nil {
			return errors.Wrapf(jvmserrors.ErrInvalidConfig,
				"toolchain %q does not point to a valid java home: %s", name, tc.JavaHome)
		}
	}

	if c.Default == "" {
		return errors.Wrap(jvmserrors.ErrInvalidConfig, "no default toolchain is set")
	}
	if !c.HasToolchain(c.Default) {
		return errors.Wrapf(jvmserrors.ErrInvalidConfig,
			"default references an unknown toolchain: %s", c.Default)
	}

	for _, o := range c.Overrides {
		if !c.HasToolchain(o.Toolchain) {
			return errors.Wrapf(jvmserrors.ErrInvalidConfig,
				"override for %s references an unknown toolchain: %s", o.Path, o.Toolchain)
		}
	}

	return nil
}
