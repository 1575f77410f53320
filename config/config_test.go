package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("VIBESTREAM_AUTH_SECRET", "test-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "vibestream.db", cfg.Database.DSN)
	assert.Equal(t, 256, cfg.Hub.SendBuffer)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CountTTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "test-secret", cfg.Auth.Secret)
}

func TestLoadRequiresAuthSecret(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadFromFileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
auth:
  secret: file-secret
hub:
  send_buffer: 64
`), 0o600))

	t.Setenv("VIBESTREAM_SERVER_ADDR", ":7070")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr) // env beats file
	assert.Equal(t, "file-secret", cfg.Auth.Secret)
	assert.Equal(t, 64, cfg.Hub.SendBuffer)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
