package doctor

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	jvmserrors "github.com/thoreinstein/jvms/internal/errors"
	"github.com/thoreinstein/jvms/internal/install"
	"github.com/thoreinstein/jvms/internal/shim"
	"github.com/thoreinstein/jvms/internal/toolchain"
)

// InstallationCheck verifies the installation directory and primary binary.
type InstallationCheck struct {
	inst install.Installation
}

var _ Check = (*InstallationCheck)(nil)

// NewInstallationCheck creates a check for the given installation.
func NewInstallationCheck(inst install.Installation) *InstallationCheck {
	return &InstallationCheck{inst: inst}
}

func (c *InstallationCheck) Name() string     { return "installation" }
func (c *InstallationCheck) Category() string { return "installation" }

// Run executes the installation diagnostic check.
func (c *InstallationCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"dir": c.inst.Dir()},
	}

	if info, err := os.Stat(c.inst.Dir()); err != nil || !info.IsDir() {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("installation directory %s does not exist", c.inst.Dir())
		result.Hint = fmt.Sprintf("Run: jvms install %s", c.inst.Dir())
		return result
	}

	if _, err := os.Stat(c.inst.BinaryPath()); err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("primary binary %s is missing", c.inst.BinaryPath())
		result.Hint = fmt.Sprintf("Run: jvms install %s", c.inst.Dir())
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("installation at %s", c.inst.Dir())
	return result
}

// ShimLinksCheck verifies that every shim entry exists and is hard-linked to
// the primary binary.
type ShimLinksCheck struct {
	inst install.Installation
}

var _ Check = (*ShimLinksCheck)(nil)

// NewShimLinksCheck creates a shim link check for the given installation.
func NewShimLinksCheck(inst install.Installation) *ShimLinksCheck {
	return &ShimLinksCheck{inst: inst}
}

func (c *ShimLinksCheck) Name() string     { return "shim-links" }
func (c *ShimLinksCheck) Category() string { return "installation" }

// Run executes the shim link diagnostic check.
func (c *ShimLinksCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	primary, err := os.Stat(c.inst.BinaryPath())
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("primary binary %s is missing", c.inst.BinaryPath())
		result.Hint = fmt.Sprintf("Run: jvms install %s", c.inst.Dir())
		return result
	}

	var missing, unlinked []string
	for _, tool := range shim.Tools() {
		info, err := os.Stat(c.inst.ShimPath(tool))
		switch {
		case err != nil:
			missing = append(missing, tool)
		case !os.SameFile(primary, info):
			unlinked = append(unlinked, tool)
		}
	}

	if len(missing) == 0 && len(unlinked) == 0 {
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("%d shim(s) linked", len(shim.Tools()))
		return result
	}

	result.Status = SeverityWarning
	result.Message = "some shims are missing or not linked to the jvms binary"
	result.Hint = fmt.Sprintf("Run: jvms install %s", c.inst.Dir())
	result.Details = map[string]any{}
	if len(missing) > 0 {
		result.Details["missing"] = missing
	}
	if len(unlinked) > 0 {
		result.Details["unlinked"] = unlinked
	}
	return result
}

// RegistryCheck verifies that the registry loads and validates.
type RegistryCheck struct {
	store *toolchain.Store
}

var _ Check = (*RegistryCheck)(nil)

// NewRegistryCheck creates a registry check backed by the given store.
func NewRegistryCheck(store *toolchain.Store) *RegistryCheck {
	return &RegistryCheck{store: store}
}

func (c *RegistryCheck) Name() string     { return "registry" }
func (c *RegistryCheck) Category() string { return "registry" }

// Run executes the registry diagnostic check.
func (c *RegistryCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.store.Path()},
	}

	cfg, err := c.store.Load()
	if err != nil {
		result.Status = SeverityError
		if errors.Is(err, jvmserrors.ErrMalformedConfig) {
			result.Message = fmt.Sprintf("registry does not parse: %v", err)
			result.Hint = fmt.Sprintf("Fix or delete %s", c.store.Path())
		} else {
			result.Message = fmt.Sprintf("registry is unreadable: %v", err)
		}
		return result
	}

	if err := cfg.Validate(); err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("registry is invalid: %v", err)
		result.Hint = "Fix the configuration with jvms toolchain and jvms default"
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("%d toolchain(s), %d override(s)",
		len(cfg.Toolchains), len(cfg.Overrides))
	return result
}

// ResolutionCheck reports which toolchain the shims would use for a directory.
type ResolutionCheck struct {
	store *toolchain.Store
	dir   string
}

var _ Check = (*ResolutionCheck)(nil)

// NewResolutionCheck creates a resolution check for the given directory.
func NewResolutionCheck(store *toolchain.Store, dir string) *ResolutionCheck {
	return &ResolutionCheck{store: store, dir: dir}
}

func (c *ResolutionCheck) Name() string     { return "resolution" }
func (c *ResolutionCheck) Category() string { return "resolution" }

// Run executes the resolution diagnostic check.
func (c *ResolutionCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"dir": c.dir},
	}

	cfg, err := c.store.Load()
	if err != nil {
		// The registry check already reports the load failure.
		result.Status = SeverityInfo
		result.Message = "skipped: registry did not load"
		return result
	}

	res, err := cfg.Resolve(c.dir)
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("resolution failed: %v", err)
		return result
	}
	if res == nil {
		result.Status = SeverityWarning
		result.Message = "no toolchain applies here"
		result.Hint = "Run: jvms default <name>"
		return result
	}

	result.Status = SeverityPass
	result.Details["java_home"] = res.Toolchain.JavaHome
	if res.Override != nil {
		result.Message = fmt.Sprintf("toolchain %s via override for %s", res.Name, res.Override.Path)
	} else {
		result.Message = fmt.Sprintf("toolchain %s (default)", res.Name)
	}
	return result
}
