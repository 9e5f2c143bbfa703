package toolchain

import (
	"os"
	"sort"

	"github.com/thoreinstein/jvms/internal/paths"
)

// Toolchain is a named Java installation, identified by its home directory.
// The name itself is the key in Config.Toolchains.
type Toolchain struct {
	JavaHome string `json:"java_home" toml:"java_home"`
}

// Override pins a directory (and its descendants) to a specific toolchain.
type Override struct {
	Path      string `json:"path"`
	Toolchain string `json:"toolchain"`
}

// Config is the toolchain registry: registered toolchains, the default
// toolchain name, and the ordered list of directory overrides.
//
// Mutations only touch in-memory state; persistence is an explicit separate
// step through [Store]. Invariants are checked by [Config.Validate] only, not
// on every mutation, so a caller may deliberately persist an invalid registry
// (force mode).
type Config struct {
	Toolchains map[string]Toolchain `json:"toolchains,omitempty"`
	Default    string               `json:"default,omitempty"`
	Overrides  []Override           `json:"overrides,omitempty"`
}

// New returns an empty registry.
func New() *Config {
	return &Config{
		Toolchains: make(map[string]Toolchain),
	}
}

// AddToolchain registers a toolchain under name, absolutizing javaHome
// against the current working directory. An existing entry with the same
// name is overwritten; no duplicate-key error exists. The home directory is
// not checked for existence here, only by Validate.
func (c *Config) AddToolchain(name, javaHome string) error {
	home, err := paths.Absolutize(javaHome)
	if err != nil {
		return err
	}

	if c.Toolchains == nil {
		c.Toolchains = make(map[string]Toolchain)
	}
	c.Toolchains[name] = Toolchain{JavaHome: home}
	return nil
}

// RemoveToolchain removes the named toolchain. Removing an unknown name is a no-op.
func (c *Config) RemoveToolchain(name string) {
	delete(c.Toolchains, name)
}

// Toolchain returns the named toolchain.
func (c *Config) Toolchain(name string) (Toolchain, bool) {
	tc, ok := c.Toolchains[name]
	return tc, ok
}

// HasToolchain reports whether name is registered.
func (c *Config) HasToolchain(name string) bool {
	_, ok := c.Toolchains[name]
	return ok
}

// Names returns the registered toolchain names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Toolchains))
	for name := range c.Toolchains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetDefault sets the default toolchain name. The name is not checked
// against the registered toolchains here, only by Validate.
func (c *Config) SetDefault(name string) {
	c.Default = name
}

// DefaultToolchain returns the default toolchain, if a default name is set
// and references a registered toolchain.
func (c *Config) DefaultToolchain() (Toolchain, bool) {
	if c.Default == "" {
		return Toolchain{}, false
	}
	return c.Toolchain(c.Default)
}

// AddOverride appends a directory override, absolutizing path. The list is
// not deduplicated: callers wanting replace semantics must call
// RemoveOverride first.
func (c *Config) AddOverride(path, toolchainName string) error {
	abs, err := paths.Absolutize(path)
	if err != nil {
		return err
	}

	c.Overrides = append(c.Overrides, Override{
		Path:      abs,
		Toolchain: toolchainName,
	})
	return nil
}

// RemoveOverride removes every override whose path equals the normalized
// absolute form of path.
func (c *Config) RemoveOverride(path string) error {
	abs, err := paths.Absolutize(path)
	if err != nil {
		return err
	}

	kept := c.Overrides[:0]
	for _, o := range c.Overrides {
		if o.Path != abs {
			kept = append(kept, o)
		}
	}
	c.Overrides = kept
	return nil
}

// CleanOverrides removes every override whose directory no longer exists on
// disk, preserving the relative order of the rest. It returns the removed
// entries.
func (c *Config) CleanOverrides() []Override {
	var removed []Override
	kept := c.Overrides[:0]
	for _, o := range c.Overrides {
		if _, err := os.Stat(o.Path); err != nil {
			removed = append(removed, o)
			continue
		}
		kept = append(kept, o)
	}
	c.Overrides = kept
	return removed
}
