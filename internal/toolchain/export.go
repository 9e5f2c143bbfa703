package toolchain

import (
	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

// exportFile is the TOML shape produced by ExportTOML. Overrides are
// deliberately excluded: they pin machine-local directories and do not
// transfer between machines the way a toolchain inventory does.
type exportFile struct {
	Default    string               `toml:"default,omitempty"`
	Toolchains map[string]Toolchain `toml:"toolchains"`
}

// ExportTOML renders the toolchain inventory (toolchains and default, not
// overrides) as TOML for sharing between machines.
func (c *Config) ExportTOML() ([]byte, error) {
	out := exportFile{
		Default:    c.Default,
		Toolchains: c.Toolchains,
	}
	if out.Toolchains == nil {
		out.Toolchains = make(map[string]Toolchain)
	}

	data, err := toml.Marshal(out)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling TOML")
	}
	return data, nil
}

// ImportTOML merges toolchains from a TOML export into the registry. An
// imported name overwrites an existing entry (last write wins, same as
// AddToolchain). The export's default is adopted only when no default is set
// yet. Returns the imported names.
func (c *Config) ImportTOML(data []byte) ([]string, error) {
	var in exportFile
	if err := toml.Unmarshal(data, &in); err != nil {
		return nil, errors.Wrap(err, "decoding TOML")
	}

	var names []string
	for name, tc := range in.Toolchains {
		if err := c.AddToolchain(name, tc.JavaHome); err != nil {
			return names, err
		}
		names = append(names, name)
	}

	if c.Default == "" && in.Default != "" {
		c.SetDefault(in.Default)
	}

	return names, nil
}
