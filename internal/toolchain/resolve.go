package toolchain

import (
	"github.com/thoreinstein/jvms/internal/paths"
)

// Resolution describes which toolchain applies to a directory and why.
type Resolution struct {
	Name      string
	Toolchain Toolchain
	// Override is the matched override, nil when the default was used.
	Override *Override
}

// OverrideFor returns the most specific override whose path is the given
// directory or an ancestor of it, or nil when none matches.
//
// Matching is path-component-wise, so an override for /foo never matches
// /foobar. Among multiple candidates the deepest path wins. When duplicate
// entries share the same path, the later entry wins; callers should not rely
// on that beyond a single resolution.
func (c *Config) OverrideFor(dir string) (*Override, error) {
	target, err := paths.Absolutize(dir)
	if err != nil {
		return nil, err
	}

	var best *Override
	for i := range c.Overrides {
		o := &c.Overrides[i]
		if !paths.IsAncestor(o.Path, target) {
			continue
		}
		if best == nil || paths.IsAncestor(best.Path, o.Path) {
			best = o
		}
	}
	return best, nil
}

// Resolve returns the toolchain in effect for dir: the toolchain of the most
// specific matching override, or the default toolchain when no override
// matches. An override referencing an unregistered toolchain is skipped in
// favor of the default. Resolve returns nil when nothing applies.
func (c *Config) Resolve(dir string) (*Resolution, error) {
	o, err := c.OverrideFor(dir)
	if err != nil {
		return nil, err
	}

	if o != nil {
		if tc, ok := c.Toolchain(o.Toolchain); ok {
			return &Resolution{Name: o.Toolchain, Toolchain: tc, Override: o}, nil
		}
	}

	if tc, ok := c.DefaultToolchain(); ok {
		return &Resolution{Name: c.Default, Toolchain: tc}, nil
	}

	return nil, nil
}
