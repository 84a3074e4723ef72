package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Default().Validate())
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  backend: redis
  redis_addr: localhost:6379
logging:
  level: debug
`), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, "localhost:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Unset fields keep their defaults.
	assert.Equal(t, "investcore.leads", cfg.Storage.LeadsKey)
}

func TestLoadFromFileJSONFallback(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"storage":{"backend":"memory"}}`), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Backend)
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Storage.Backend = "dynamo"
	assert.Error(t, cfg.Validate())
}

func TestValidateRequiresRedisAddr(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Storage.Backend = "redis"
	cfg.Storage.RedisAddr = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsSharedKeys(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Storage.HoldingsKey = cfg.Storage.LeadsKey
	assert.Error(t, cfg.Validate())
}

func TestLoadPreservesFileValues(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  backend: memory
logging:
  level: warn
`), 0644))

	// With no env vars set, values from the file must survive the env pass
	// untouched, and unset fields keep their Default() values.
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "investcore.leads", cfg.Storage.LeadsKey)
	assert.Equal(t, "investcore.holdings", cfg.Storage.HoldingsKey)
}

func TestLoadEnvWinsOverFile(t *testing.T) {
	t.Setenv("INVESTCORE_STORAGE_BACKEND", "redis")
	t.Setenv("INVESTCORE_STORAGE_REDIS_ADDR", "localhost:6379")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  backend: memory
logging:
  level: debug
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, "localhost:6379", cfg.Storage.RedisAddr)
	// Fields without an env override keep the file's value.
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("INVESTCORE_STORAGE_BACKEND", "memory")
	t.Setenv("INVESTCORE_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestSaveToFileRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Storage.Backend = "memory"

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
