package shim

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jvmserrors "github.com/thoreinstein/jvms/internal/errors"
	"github.com/thoreinstein/jvms/internal/logging"
	"github.com/thoreinstein/jvms/internal/toolchain"
)

// fakeToolchain creates a java home with a bin/<tool> script that records
// its JAVA_HOME and arguments to outFile and exits with exitCode.
func fakeToolchain(t *testing.T, tool, outFile string, exitCode int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("delegate scripts require a POSIX shell")
	}

	home := t.TempDir()
	binDir := filepath.Join(home, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0o755))

	script := fmt.Sprintf("#!/bin/sh\nprintf '%%s|%%s' \"$JAVA_HOME\" \"$*\" > %q\nexit %d\n", outFile, exitCode)
	require.NoError(t, os.WriteFile(filepath.Join(binDir, tool), []byte(script), 0o755))

	return home
}

func TestDispatchRunsDelegate(t *testing.T) {
	installDir := t.TempDir()
	outFile := filepath.Join(t.TempDir(), "out")
	home := fakeToolchain(t, "javac", outFile, 0)

	store := toolchain.NewStore(installDir)
	cfg := toolchain.New()
	require.NoError(t, cfg.AddToolchain("11", home))
	cfg.SetDefault("11")
	require.NoError(t, store.Save(cfg, false))

	d := NewDispatcher(store, logging.ForTest(t))
	code, err := d.Run("javac", []string{"-version", "Main.java"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	recorded, err := os.ReadFile(outFile)
	require.NoError(t, err, "delegate was not spawned")

	parts := strings.SplitN(string(recorded), "|", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, home, parts[0], "JAVA_HOME must point at the toolchain home")
	assert.Equal(t, "-version Main.java", parts[1], "arguments must be forwarded in order")
}

func TestDispatchPropagatesExitCode(t *testing.T) {
	installDir := t.TempDir()
	outFile := filepath.Join(t.TempDir(), "out")
	home := fakeToolchain(t, "java", outFile, 3)

	store := toolchain.NewStore(installDir)
	cfg := toolchain.New()
	require.NoError(t, cfg.AddToolchain("11", home))
	cfg.SetDefault("11")
	require.NoError(t, store.Save(cfg, false))

	d := NewDispatcher(store, logging.ForTest(t))
	code, err := d.Run("java", nil)
	require.NoError(t, err, "a delegate that runs and fails is not a dispatch error")
	assert.Equal(t, 3, code)
}

func TestDispatchEmptyConfiguration(t *testing.T) {
	store := toolchain.NewStore(t.TempDir())

	d := NewDispatcher(store, logging.ForTest(t))
	_, err := d.Run("java", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jvmserrors.ErrNoToolchain),
		"empty configuration must fail with ErrNoToolchain, got %v", err)
}

func TestDispatchMalformedConfiguration(t *testing.T) {
	installDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(installDir, toolchain.ConfigFileName), []byte("garbage"), 0o644))

	d := NewDispatcher(toolchain.NewStore(installDir), logging.ForTest(t))
	_, err := d.Run("java", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jvmserrors.ErrMalformedConfig))
}

func TestDispatchHonorsOverride(t *testing.T) {
	installDir := t.TempDir()
	defaultOut := filepath.Join(t.TempDir(), "default-out")
	overrideOut := filepath.Join(t.TempDir(), "override-out")
	defaultHome := fakeToolchain(t, "java", defaultOut, 0)
	overrideHome := fakeToolchain(t, "java", overrideOut, 0)

	workDir := t.TempDir()
	t.Chdir(workDir)
	// Pin the directory as the process actually reports it, in case the
	// tempdir path involves symlinks.
	wd, err := os.Getwd()
	require.NoError(t, err)

	store := toolchain.NewStore(installDir)
	cfg := toolchain.New()
	require.NoError(t, cfg.AddToolchain("default", defaultHome))
	require.NoError(t, cfg.AddToolchain("pinned", overrideHome))
	cfg.SetDefault("default")
	require.NoError(t, cfg.AddOverride(wd, "pinned"))
	require.NoError(t, store.Save(cfg, false))

	d := NewDispatcher(store, logging.ForTest(t))
	code, err := d.Run("java", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	_, err = os.Stat(overrideOut)
	assert.NoError(t, err, "override toolchain should have been used")
	_, err = os.Stat(defaultOut)
	assert.True(t, os.IsNotExist(err), "default toolchain should not have run")
}
