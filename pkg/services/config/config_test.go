package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "duckdb", cfg.Store.Driver)
	assert.Equal(t, "factory-atlas.db", cfg.Store.DuckDBPath)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "factory-atlas.yaml", `
server:
  host: 0.0.0.0
  port: 9090
  shutdown_timeout: 30s
logging:
  level: debug
store:
  driver: snowflake
  profiles_path: /etc/factory-atlas/profiles.ini
  profile: plant-eu
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, StoreConfig{
		Driver:       "snowflake",
		DuckDBPath:   "factory-atlas.db",
		ProfilesPath: "/etc/factory-atlas/profiles.ini",
		Profile:      "plant-eu",
	}, cfg.Store)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "factory-atlas.yaml", "server:\n  port: 9090\n")
	t.Setenv("FACTORY_ATLAS_SERVER_PORT", "7070")
	t.Setenv("FACTORY_ATLAS_STORE_DUCKDB_PATH", "/data/ops.db")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "/data/ops.db", cfg.Store.DuckDBPath)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		path := writeFile(t, "factory-atlas.yaml", "store:\n  driver: oracle\n")
		_, err := Load(path)
		assert.ErrorContains(t, err, "unsupported store driver")
	})

	t.Run("warehouse driver without profile", func(t *testing.T) {
		path := writeFile(t, "factory-atlas.yaml", "store:\n  driver: databricks\n")
		_, err := Load(path)
		assert.ErrorContains(t, err, "store.profile")
	})
}
