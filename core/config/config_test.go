package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.CacheTTLSeconds)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "https://bot-igor.ru/api/products?on_main=true", cfg.Feed.PrimaryURL)
	assert.Equal(t, "https://bot-igor.ru/api/products?on_main=false", cfg.Feed.SecondaryURL)
	assert.Equal(t, 30, cfg.Feed.TimeoutSeconds)
	assert.False(t, cfg.Feed.Archive)
	assert.True(t, cfg.Sync.Enabled)
	assert.True(t, cfg.Sync.RunOnStart)
	assert.Equal(t, 60, cfg.Sync.IntervalSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("SYNC_INTERVAL_SECONDS", "300")
	t.Setenv("FEED_ARCHIVE", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 300, cfg.Sync.IntervalSeconds)
	assert.True(t, cfg.Feed.Archive)
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nFEED_TIMEOUT_SECONDS=5\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("FEED_TIMEOUT_SECONDS")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Feed.TimeoutSeconds)
}
