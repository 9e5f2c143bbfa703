// Package settings manages the jvms tool's own preferences using Viper.
//
// These are ambient preferences for the CLI itself (log format, color) and
// are entirely separate from the toolchain registry, which lives next to the
// installed binary and is managed by the toolchain package. The settings
// file is ~/.config/jvms/config.yaml (XDG config home), and every key can be
// overridden through JVMS_* environment variables.
package settings

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// AppName is the application name used for the settings file location.
const AppName = "jvms"

// Settings represents the tool's preference file.
type Settings struct {
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
	LogFile   string `mapstructure:"log_file" yaml:"log_file"`
	Color     string `mapstructure:"color" yaml:"color"`
}

// Path returns the settings file location.
func Path() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// Init initializes Viper with defaults and the search path.
// Call this once at application startup before accessing settings.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))

	viper.SetEnvPrefix("JVMS")
	viper.AutomaticEnv()

	viper.SetDefault("log_format", "text")
	viper.SetDefault("log_file", "")
	viper.SetDefault("color", "auto")
}

// Load reads the settings file. A missing file is not an error; defaults
// apply. A present but unreadable or invalid file is an error.
func Load() (*Settings, error) {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading settings file")
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "unmarshaling settings")
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *Settings) validate() error {
	switch s.LogFormat {
	case "text", "json":
	default:
		return errors.Newf("invalid log_format: %q (valid: text, json)", s.LogFormat)
	}

	switch s.Color {
	case "auto", "always", "never":
	default:
		return errors.Newf("invalid color: %q (valid: auto, always, never)", s.Color)
	}

	return nil
}
