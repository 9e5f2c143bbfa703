package toolchain

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	jvmserrors "github.com/thoreinstein/jvms/internal/errors"
	"github.com/thoreinstein/jvms/pkg/fileutil"
)

// ConfigFileName is the registry file name inside the installation directory.
const ConfigFileName = "jvms.conf"

// Store loads and persists the registry at a fixed path inside an
// installation directory. There is no cross-process locking: two concurrent
// invocations doing read-modify-write can race and the later writer wins.
type Store struct {
	path string
}

// NewStore returns a Store for the registry file inside installDir.
func NewStore(installDir string) *Store {
	return &Store{path: filepath.Join(installDir, ConfigFileName)}
}

// Path returns the registry file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted registry. A missing file yields an empty registry
// without error. An unreadable file is an I/O error; a file that exists but
// does not decode carries jvmserrors.ErrMalformedConfig.
func (s *Store) Load() (*Config, error) {
	data, err := fileutil.ReadFileWithLimit(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, errors.Wrapf(err, "reading %s", s.path)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(jvmserrors.ErrMalformedConfig, "decoding %s: %v", s.path, err)
	}

	return &cfg, nil
}

// Save persists the registry. Unless skipValidation is set, Validate runs
// first and a violation aborts the write. The write itself is atomic
// (temp file + rename), so a crash mid-save leaves the previous registry
// intact.
func (s *Store) Save(cfg *Config, skipValidation bool) error {
	if !skipValidation {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if err := fileutil.AtomicWriteJSON(s.path, cfg); err != nil {
		return errors.Wrapf(err, "writing %s", s.path)
	}
	return nil
}
