package shim

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"

	jvmserrors "github.com/thoreinstein/jvms/internal/errors"
	"github.com/thoreinstein/jvms/internal/toolchain"
)

// JavaHomeEnv is the environment variable injected into every delegate,
// pointing at the resolved toolchain's home directory.
const JavaHomeEnv = "JAVA_HOME"

// Dispatcher resolves the toolchain for the current working directory and
// runs the matching real tool from it.
type Dispatcher struct {
	store  *toolchain.Store
	logger *slog.Logger
}

// NewDispatcher creates a Dispatcher reading the registry from store.
func NewDispatcher(store *toolchain.Store, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		store:  store,
		logger: logger,
	}
}

// Run loads the registry, resolves the toolchain for the current working
// directory (most specific override, else default), and runs
// <home>/bin/<tool> with JAVA_HOME set and args forwarded verbatim. It
// blocks until the delegate exits and returns the delegate's exit code.
//
// When no toolchain resolves, or the registry cannot be loaded, Run returns
// an error and no process is spawned.
func (d *Dispatcher) Run(tool string, args []string) (int, error) {
	cfg, err := d.store.Load()
	if err != nil {
		return 0, errors.Wrap(err, "loading configuration")
	}

	wd, err := os.Getwd()
	if err != nil {
		return 0, errors.Wrap(err, "getting working directory")
	}

	res, err := cfg.Resolve(wd)
	if err != nil {
		return 0, err
	}
	if res == nil {
		return 0, errors.Wrapf(jvmserrors.ErrNoToolchain,
			"no override matches %s and no default toolchain is configured", wd)
	}

	delegate := filepath.Join(res.Toolchain.JavaHome, "bin", tool+exeSuffix())

	d.logger.Debug("dispatching to delegate",
		"tool", tool,
		"toolchain", res.Name,
		"delegate", delegate,
	)

	cmd := exec.Command(delegate, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = withJavaHome(os.Environ(), res.Toolchain.JavaHome)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The delegate ran and failed; its exit code is our exit code.
			return exitErr.ExitCode(), nil
		}
		return 0, errors.Wrapf(err, "spawning %s", delegate)
	}

	return 0, nil
}

// withJavaHome returns env with any inherited JAVA_HOME replaced by home.
func withJavaHome(env []string, home string) []string {
	out := make([]string, 0, len(env)+1)
	for _, kv := range env {
		if strings.HasPrefix(kv, JavaHomeEnv+"=") {
			continue
		}
		out = append(out, kv)
	}
	return append(out, JavaHomeEnv+"="+home)
}

func exeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
