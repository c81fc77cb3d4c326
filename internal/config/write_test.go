// internal/config/write_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flicks", "config.toml")

	err := WriteDefault(path)
	require.NoError(t, err, "WriteDefault failed")

	content, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read written file")

	assert.Contains(t, string(content), "[omdb]")
	assert.Contains(t, string(content), "[storage]")
	assert.Contains(t, string(content), "${OMDB_API_KEY:-}")
}

func TestWriteDefault_CreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "config.toml")

	err := WriteDefault(path)
	require.NoError(t, err, "WriteDefault failed")

	_, err = os.Stat(path)
	assert.False(t, os.IsNotExist(err), "file was not created")
}

func TestConfig_Write(t *testing.T) {
	cfg := &Config{
		OMDb:    OMDbConfig{APIKey: "written-key", BaseURL: "http://localhost:9999/"},
		Storage: StorageConfig{Driver: "bolt", Path: "/var/lib/flicks/flicks.bolt"},
	}

	path := filepath.Join(t.TempDir(), "config.toml")

	err := cfg.Write(path)
	require.NoError(t, err, "Write failed")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "written-key")
	assert.Contains(t, string(content), "/var/lib/flicks/flicks.bolt")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConfig_WriteRoundTrip(t *testing.T) {
	t.Setenv("FLICKS_OMDB_API_KEY", "")
	cfg := Default()
	cfg.OMDb.APIKey = "round-trip"
	cfg.Cache.TTL = 90 * time.Minute
	cfg.Storage.Driver = "memory"

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, cfg.Write(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
