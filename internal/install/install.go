// Package install locates the current jvms installation and installs the
// binary plus its shim catalog into a target directory.
//
// An installation is one directory holding the primary binary, one
// hard-linked entry per shim name (all sharing the same file content), and
// the jvms.conf registry. The directory of the running executable is the
// installation directory; it anchors both identity detection and the
// registry location.
package install

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/jvms/internal/shim"
	"github.com/thoreinstein/jvms/internal/toolchain"
)

// BinaryName is the primary executable's base name, without platform suffix.
const BinaryName = "jvms"

// Installation is a jvms installation directory.
type Installation struct {
	dir string
}

// New returns an Installation rooted at dir.
func New(dir string) Installation {
	return Installation{dir: dir}
}

// Current returns the installation the running executable belongs to: the
// directory containing the executable. Symlinks are not resolved; the shim
// entries are hard links, so the reported path is already the real one.
func Current() (Installation, error) {
	exe, err := os.Executable()
	if err != nil {
		return Installation{}, errors.Wrap(err, "locating the running executable")
	}
	return New(filepath.Dir(exe)), nil
}

// Dir returns the installation directory.
func (i Installation) Dir() string {
	return i.dir
}

// Store returns the registry store for this installation.
func (i Installation) Store() *toolchain.Store {
	return toolchain.NewStore(i.dir)
}

// BinaryPath returns the primary binary path inside the installation.
func (i Installation) BinaryPath() string {
	return filepath.Join(i.dir, BinaryName+exeSuffix())
}

// ShimPath returns the path of the shim entry for a tool name.
func (i Installation) ShimPath(tool string) string {
	return filepath.Join(i.dir, tool+exeSuffix())
}

// InstallBinaries copies the running executable into the installation
// directory and hard-links every shim catalog name to it. Existing entries
// are replaced, so installing over a previous installation works.
func (i Installation) InstallBinaries(logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	source, err := os.Executable()
	if err != nil {
		return errors.Wrap(err, "locating the running executable")
	}

	if err := os.MkdirAll(i.dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", i.dir)
	}

	primary := i.BinaryPath()
	logger.Info("copying binary", "from", source, "to", primary)
	if err := copyExecutable(source, primary); err != nil {
		return err
	}

	for _, tool := range shim.Tools() {
		link := i.ShimPath(tool)
		logger.Info("linking shim", "shim", link)

		if err := os.Remove(link); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "removing existing %s", link)
		}
		if err := os.Link(primary, link); err != nil {
			return errors.Wrapf(err, "linking %s", link)
		}
	}

	return nil
}

func copyExecutable(source, dest string) error {
	in, err := os.Open(source)
	if err != nil {
		return errors.Wrapf(err, "opening %s", source)
	}
	defer in.Close()

	// Remove first: the destination may be a hard link from a previous
	// install, and writing through it would corrupt every shim at once.
	if err := os.Remove(dest); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "removing existing %s", dest)
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o755)
	if err != nil {
		return errors.Wrapf(err, "creating %s", dest)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrapf(err, "copying to %s", dest)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", dest)
	}

	return nil
}

func exeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
