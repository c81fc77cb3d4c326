// internal/config/load_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath
}

func TestLoad_Valid(t *testing.T) {
	cfgPath := writeConfig(t, `
[omdb]
api_key = "abc123"
timeout = "3s"

[storage]
driver = "bolt"
path = "/tmp/flicks.bolt"

[cache]
max_entries = 50
evict_count = 10
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "abc123", cfg.OMDb.APIKey)
	assert.Equal(t, 3*time.Second, cfg.OMDb.Timeout)
	assert.Equal(t, "bolt", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/flicks.bolt", cfg.Storage.Path)
	assert.Equal(t, 50, cfg.Cache.MaxEntries)
	assert.Equal(t, 10, cfg.Cache.EvictCount)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	cfgPath := writeConfig(t, `[omdb]
api_key = "k"
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.OMDb.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.OMDb.Timeout)
	assert.Equal(t, DefaultResultsPerPage, cfg.OMDb.ResultsPerPage)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "/data/flicks/flicks.db", cfg.Storage.Path)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 120, cfg.Cache.MaxEntries)
	assert.Equal(t, 40, cfg.Cache.EvictCount)
	assert.Equal(t, 8, cfg.Recent.Max)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "/data/flicks/flicks.log", cfg.Log.File)
}

func TestLoad_SubstitutesEnv(t *testing.T) {
	t.Setenv("FLICKS_TEST_OMDB_KEY", "from-env")
	cfgPath := writeConfig(t, `[omdb]
api_key = "${FLICKS_TEST_OMDB_KEY}"
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.OMDb.APIKey)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FLICKS_OMDB_API_KEY", "override")
	cfgPath := writeConfig(t, `[omdb]
api_key = "file-key"
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "override", cfg.OMDb.APIKey)
}

func TestLoad_MissingEnvVar(t *testing.T) {
	cfgPath := writeConfig(t, `[omdb]
api_key = "${FLICKS_TEST_NONEXISTENT_VAR_12345}"
`)

	_, err := Load(cfgPath)
	require.Error(t, err)

	var cfgErr *Error
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{"FLICKS_TEST_NONEXISTENT_VAR_12345"}, cfgErr.Missing)
	assert.Equal(t, cfgPath, cfgErr.Path)
}

func TestLoad_ValidationError(t *testing.T) {
	cfgPath := writeConfig(t, `
[storage]
driver = "postgres"
`)

	_, err := Load(cfgPath)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "storage.driver"), "got %v", err)
}

func TestLoad_InvalidTOML(t *testing.T) {
	cfgPath := writeConfig(t, `[omdb`)

	_, err := Load(cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoadOrDefault_NoFile(t *testing.T) {
	origDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, os.Chdir(origDir))
	}()

	t.Setenv("FLICKS_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/nonexistent/xdg")
	t.Setenv("FLICKS_OMDB_API_KEY", "env-key")
	require.NoError(t, os.Chdir(t.TempDir()))

	cfg, path, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, "env-key", cfg.OMDb.APIKey)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
}

func TestLoad_DefaultConfigFile(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err, "embedded default config must load cleanly")
	assert.Equal(t, "", cfg.OMDb.APIKey)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".local/share/flicks/flicks.db"), ExpandHome("~/.local/share/flicks/flicks.db"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
}
