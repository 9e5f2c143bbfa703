// Package commands implements the CLI commands for jvms.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	buildinfo "github.com/thoreinstein/jvms/cmd"
	jvmserrors "github.com/thoreinstein/jvms/internal/errors"
	"github.com/thoreinstein/jvms/internal/logging"
	"github.com/thoreinstein/jvms/internal/settings"
)

// installDirFlag overrides the installation directory (default: the
// directory of the running executable).
var installDirFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// loadedSettings holds the tool preferences read at startup.
var loadedSettings *settings.Settings

// settingsLoadErr holds any error that occurred during settings loading.
var settingsLoadErr error

func init() {
	cobra.OnInitialize(initSettings)

	rootCmd.PersistentFlags().StringVar(&installDirFlag, "install-dir", "",
		"operate on this installation directory instead of the one containing the binary")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json (default from settings)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = buildinfo.Version
	rootCmd.SetVersionTemplate("jvms version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initSettings() {
	settings.Init()
	loadedSettings, settingsLoadErr = settings.Load()
}

var rootCmd = &cobra.Command{
	Use:   "jvms",
	Short: "Per-directory Java toolchain version manager",
	Long: `jvms manages multiple named Java installations ("toolchains") and
switches between them per directory.

It installs a single binary that also answers to the standard Java tool
names (java, javac, jar, ...). Invoked under one of those names, it
resolves the toolchain for the current directory - the most specific
directory override wins, otherwise the default - and transparently runs
the real tool from that toolchain with JAVA_HOME set.`,
	Example: `  # Register a toolchain and make it the default
  jvms toolchain add 21 /opt/jdk-21
  jvms default 21

  # Pin the current project to an older JDK
  jvms override set 11

  # Check the configuration
  jvms doctor`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		if settingsLoadErr != nil {
			return jvmserrors.NewUserError(settingsLoadErr, "Check "+settings.Path())
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags and
// the settings file.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return jvmserrors.NewUserError(
			errors.New("cannot use --quiet and --verbose together"),
			"Drop one of the two flags")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("JVMS_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format := logFormat
	file := logFile
	colorMode := "auto"
	if loadedSettings != nil {
		if format == "" {
			format = loadedSettings.LogFormat
		}
		if file == "" {
			file = loadedSettings.LogFile
		}
		colorMode = loadedSettings.Color
	}

	switch colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(format) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return jvmserrors.NewUserError(
				errors.Wrapf(err, "opening log file %s", file),
				"Check the --log-file path")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}
