package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.DB.Driver)
	require.Equal(t, "hub.db", cfg.DB.Path)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HUB_SERVER_PORT", "9090")
	t.Setenv("HUB_DB_DRIVER", "postgres")
	t.Setenv("HUB_DB_DSN", "postgres://localhost/hub")
	t.Setenv("HUB_CORS_ORIGINS", "https://hub.jezweb.com.au,http://localhost:5173")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "postgres", cfg.DB.Driver)
	require.Equal(t, "postgres://localhost/hub", cfg.DB.DSN)
	require.Equal(t, []string{"https://hub.jezweb.com.au", "http://localhost:5173"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hub.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 3000\ndb:\n  path: /tmp/other.db\n"), 0o600))
	t.Setenv("HUB_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 3000, cfg.Server.Port)
	require.Equal(t, "/tmp/other.db", cfg.DB.Path)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("HUB_SERVER_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("HUB_DB_DRIVER", "oracle")

	_, err := Load()
	require.Error(t, err)
}
