package toolchain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jvmserrors "github.com/thoreinstein/jvms/internal/errors"
)

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())

	cfg, err := store.Load()
	require.NoError(t, err, "missing file is an empty registry, not an error")
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.Toolchains)
	assert.Empty(t, cfg.Default)
	assert.Empty(t, cfg.Overrides)
}

func TestStoreLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not json"), 0644))

	_, err := NewStore(dir).Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, jvmserrors.ErrMalformedConfig),
		"decode failure should carry ErrMalformedConfig, got %v", err)
}

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	home := t.TempDir()
	store := NewStore(dir)

	cfg := New()
	require.NoError(t, cfg.AddToolchain("11", home))
	cfg.SetDefault("11")
	require.NoError(t, cfg.AddOverride(filepath.FromSlash("/w/proj"), "11"))

	require.NoError(t, store.Save(cfg, false))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.Default, loaded.Default)
	assert.Equal(t, cfg.Toolchains, loaded.Toolchains)
	assert.Equal(t, cfg.Overrides, loaded.Overrides)
}

func TestStoreSaveValidates(t *testing.T) {
	store := NewStore(t.TempDir())

	err := store.Save(New(), false)
	require.Error(t, err, "saving an empty registry without force must fail validation")
	assert.True(t, errors.Is(err, jvmserrors.ErrInvalidConfig))

	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr), "aborted save must not write the file")
}

func TestStoreSaveForce(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Save(New(), true), "skipValidation writes unconditionally")

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.Toolchains)
}

func TestStoreWireFormat(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`{
  "toolchains": {"11": {"java_home": "/opt/jdk11"}},
  "default": "11",
  "overrides": [{"path": "/w/proj", "toolchain": "11"}]
}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0644))

	cfg, err := NewStore(dir).Load()
	require.NoError(t, err)

	tc, ok := cfg.Toolchain("11")
	require.True(t, ok)
	assert.Equal(t, "/opt/jdk11", tc.JavaHome)
	assert.Equal(t, "11", cfg.Default)
	require.Len(t, cfg.Overrides, 1)
	assert.Equal(t, "/w/proj", cfg.Overrides[0].Path)
	assert.Equal(t, "11", cfg.Overrides[0].Toolchain)
}
