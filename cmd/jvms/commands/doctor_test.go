package commands

import (
	"os"
	"testing"

	"github.com/cockroachdb/errors"

	jvmserrors "github.com/thoreinstein/jvms/internal/errors"
	"github.com/thoreinstein/jvms/internal/install"
	"github.com/thoreinstein/jvms/internal/shim"
)

func TestDoctorCommand_Metadata(t *testing.T) {
	if doctorCmd.Use != "doctor" {
		t.Errorf("Use = %q, want %q", doctorCmd.Use, "doctor")
	}
	if doctorCmd.Flags().Lookup("json") == nil {
		t.Error("--json flag should be defined")
	}
}

// installBinaries lays out a primary binary and its shim links inside the
// registry installation created by testRegistry.
func installBinaries(t *testing.T) {
	t.Helper()

	inst := install.New(installDirFlag)
	if err := os.WriteFile(inst.BinaryPath(), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("writing primary binary: %v", err)
	}
	for _, tool := range shim.Tools() {
		if err := os.Link(inst.BinaryPath(), inst.ShimPath(tool)); err != nil {
			t.Fatalf("linking shim %s: %v", tool, err)
		}
	}
}

func TestRunDoctor_Healthy(t *testing.T) {
	testRegistry(t, "21")
	installBinaries(t)

	if err := runDoctor(doctorCmd, nil); err != nil {
		t.Errorf("runDoctor() error = %v", err)
	}
}

func TestRunDoctor_InvalidConfiguration(t *testing.T) {
	store, cfg := testRegistry(t, "21")
	installBinaries(t)

	// Break the registry: default points at a toolchain that is gone.
	cfg.RemoveToolchain("21")
	if err := cfg.AddToolchain("17", t.TempDir()); err != nil {
		t.Fatalf("AddToolchain() error = %v", err)
	}
	if err := store.Save(cfg, true); err != nil {
		t.Fatalf("seeding broken registry: %v", err)
	}

	err := runDoctor(doctorCmd, nil)
	if err == nil {
		t.Fatal("runDoctor() should fail on an invalid registry")
	}

	var exitErr *jvmserrors.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != jvmserrors.ExitUser {
		t.Errorf("failed checks should be a user error, got %v", err)
	}
}

func TestRunDoctor_MissingInstallation(t *testing.T) {
	testRegistry(t, "21")

	// Registry is fine but no binaries were installed.
	err := runDoctor(doctorCmd, nil)
	if err == nil {
		t.Fatal("runDoctor() should fail when the binaries are missing")
	}
}
