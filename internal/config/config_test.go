package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", StoreMemory)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.StoreBackend)
	assert.Equal(t, 30*time.Second, cfg.HeartbeatInterval)
	assert.True(t, cfg.SeedData)
	assert.Equal(t, 3, cfg.WebhookMaxRetries)
}

func TestLoadConfig_PostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("STORE_BACKEND", StorePostgres)
	t.Setenv("DATABASE_URL", "")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadConfig_UnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "mongo")

	_, err := LoadConfig()

	assert.ErrorContains(t, err, "unknown STORE_BACKEND")
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", StoreSQLite)
	t.Setenv("HEARTBEAT_INTERVAL", "2s")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.HeartbeatInterval)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, 0, cfg.RedisDB) // некорректное значение - берется значение по умолчанию
}
