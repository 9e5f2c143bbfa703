package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"

	jvmserrors "github.com/thoreinstein/jvms/internal/errors"
)

func TestToolchainAddCommand_Metadata(t *testing.T) {
	if toolchainAddCmd.Use != "add <name> <java-home>" {
		t.Errorf("Use = %q, want %q", toolchainAddCmd.Use, "add <name> <java-home>")
	}
	if toolchainAddCmd.Flags().Lookup("force") == nil {
		t.Error("--force flag should be defined")
	}
}

func TestRunToolchainAdd_Persists(t *testing.T) {
	store, _ := testRegistry(t, "21")

	home := filepath.Join(t.TempDir(), "jdk-17")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("creating fake java home: %v", err)
	}

	if err := runToolchainAdd(nil, []string{"17", home}); err != nil {
		t.Fatalf("runToolchainAdd() error = %v", err)
	}

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	tc, ok := cfg.Toolchain("17")
	if !ok {
		t.Fatal("toolchain 17 should be registered")
	}
	if tc.JavaHome != home {
		t.Errorf("JavaHome = %q, want %q", tc.JavaHome, home)
	}
}

func TestRunToolchainAdd_RefusesDuplicate(t *testing.T) {
	store, cfg := testRegistry(t, "21")
	existing, _ := cfg.Toolchain("21")

	err := runToolchainAdd(nil, []string{"21", t.TempDir()})
	if err == nil {
		t.Fatal("adding an existing name should fail")
	}

	var exitErr *jvmserrors.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != jvmserrors.ExitUser {
		t.Errorf("duplicate add should be a user error, got %v", err)
	}

	// The registered home must be untouched.
	cfgAfter, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tc, _ := cfgAfter.Toolchain("21"); tc.JavaHome != existing.JavaHome {
		t.Errorf("JavaHome = %q, want %q", tc.JavaHome, existing.JavaHome)
	}
}

func TestRunToolchainAdd_FirstRequiresForce(t *testing.T) {
	testRegistry(t)

	home := filepath.Join(t.TempDir(), "jdk-21")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("creating fake java home: %v", err)
	}

	// No default is set yet, so the save fails validation.
	err := runToolchainAdd(nil, []string{"21", home})
	if !errors.Is(err, jvmserrors.ErrInvalidConfig) {
		t.Fatalf("first add without --force should fail validation, got %v", err)
	}

	toolchainAddForce = true
	t.Cleanup(func() { toolchainAddForce = false })

	if err := runToolchainAdd(nil, []string{"21", home}); err != nil {
		t.Fatalf("first add with --force error = %v", err)
	}
}
