package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Uses defaults when the file is missing", func(t *testing.T) {
		// When: loading a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults apply
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, StorageMemory, conf.Storage)
		assert.Equal(t, time.Hour, conf.SessionTTL)
		assert.Equal(t, 5*time.Second, conf.ShutdownTimeout)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Reads the YAML file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte(`log-level: debug
http-port: "9090"
storage: redis
session-ttl: 10m
redis:
  host: cache
  port: "6380"
`), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: file values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, 10*time.Minute, conf.SessionTTL)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("http-port: \"9090\"\n"), 0o600))
		t.Setenv("HTTP_PORT", "7070")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "7070", conf.HTTPPort)
	})

	t.Run("Rejects unknown storage", func(t *testing.T) {
		t.Setenv("STORAGE", "postgres")

		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.ErrorIs(t, err, ErrUnknownStorage)
	})
}
