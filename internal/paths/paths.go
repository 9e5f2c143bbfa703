package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrNoWorkingDir indicates the process working directory could not be determined.
var ErrNoWorkingDir = errors.New("working directory not found")

// Normalize returns the lexically canonical form of path. It never touches
// the filesystem and never resolves symlinks:
//
//   - "." components are dropped
//   - ".." cancels a preceding normal component
//   - ".." directly under the root is dropped (the root has no parent)
//   - ".." above a relative head is kept ("../../a" stays as is)
//   - the empty result is "."
//
// Normalize is idempotent: Normalize(Normalize(p)) == Normalize(p).
func Normalize(path string) string {
	return filepath.Clean(path)
}

// Absolutize makes path absolute against the process working directory at
// call time, then normalizes. Already-absolute paths are normalized as-is.
// It is the only place a relative path is anchored; everything stored in the
// toolchain registry passes through here at the moment it is added.
func Absolutize(path string) (string, error) {
	if filepath.IsAbs(path) {
		return Normalize(path), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(ErrNoWorkingDir, err.Error())
	}

	return filepath.Join(wd, path), nil
}

// IsAncestor reports whether child is ancestor itself or a path-component-wise
// descendant of it. Both paths must already be normalized and absolute; the
// comparison is purely lexical.
//
// The test is component-wise, not a naive string prefix: "/foo" is not an
// ancestor of "/foobar".
func IsAncestor(ancestor, child string) bool {
	if ancestor == child {
		return true
	}
	if !strings.HasSuffix(ancestor, string(filepath.Separator)) {
		ancestor += string(filepath.Separator)
	}
	return strings.HasPrefix(child, ancestor)
}
