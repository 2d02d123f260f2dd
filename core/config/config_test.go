package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://dummyjson.com", cfg.Source.BaseURL)
	assert.Equal(t, 30, cfg.Source.PageSize)
	assert.Equal(t, 3, cfg.Source.MaxRetries)
	assert.Equal(t, "catalog", cfg.Database.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "upsert", cfg.Sync.WriteMode)
	assert.Equal(t, 10, cfg.Updater.MaxConcurrent)
	assert.False(t, cfg.Storage.Enabled)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SOURCE_PAGE_SIZE", "50")
	t.Setenv("SYNC_WRITE_MODE", "insert")
	t.Setenv("DATABASE_HOST", "db.internal")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Source.PageSize)
	assert.Equal(t, "insert", cfg.Sync.WriteMode)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}
