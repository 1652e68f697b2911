package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tiendasync.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("TIENDASYNC_SECRET", "test-secret")

	path := writeConfigFile(t, `
server:
  port: 9090
  read_timeout: 10s
  shutdown_timeout: 5s
database:
  path: /tmp/test.db
log:
  level: debug
  format: text
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, Duration(10*time.Second), cfg.Server.ReadTimeout)
	assert.Equal(t, Duration(5*time.Second), cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "test-secret", cfg.Auth.Secret)
}

func TestLoadFromFile_DefaultsSurviveForAbsentKeys(t *testing.T) {
	t.Setenv("TIENDASYNC_SECRET", "test-secret")

	path := writeConfigFile(t, `
server:
  port: 9090
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, Duration(30*time.Second), cfg.Server.WriteTimeout)
	assert.Equal(t, "data/tiendasync.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile_EnvOverridesYAML(t *testing.T) {
	t.Setenv("TIENDASYNC_SECRET", "test-secret")
	t.Setenv("TIENDASYNC_PORT", "7070")
	t.Setenv("TIENDASYNC_DB_PATH", "/tmp/override.db")

	path := writeConfigFile(t, `
server:
  port: 9090
database:
  path: /tmp/yaml.db
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "/tmp/override.db", cfg.Database.Path)
}

func TestLoadFromFile_MissingSecretFails(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TIENDASYNC_SECRET")
}

func TestLoadFromFile_DevModeSkipsSecret(t *testing.T) {
	t.Setenv("TIENDASYNC_DEV_MODE", "true")

	path := writeConfigFile(t, `
server:
  port: 9090
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Auth.Secret)
}

func TestLoadFromFile_InvalidDuration(t *testing.T) {
	t.Setenv("TIENDASYNC_SECRET", "test-secret")

	path := writeConfigFile(t, `
server:
  read_timeout: not-a-duration
`)

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("TIENDASYNC_SECRET", "test-secret")
	t.Setenv("TIENDASYNC_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}
