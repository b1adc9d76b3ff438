package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "test")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_DB", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "chefsync", cfg.DBName)
	assert.Equal(t, "chefsync.db", cfg.DBPath)
	assert.Empty(t, cfg.RedisHost)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestLoadConfigSQLiteDriver(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "test")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/chefsync-test.db")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/chefsync-test.db", cfg.DBPath)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "test")
	t.Setenv("DB_DRIVER", "oracle")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestLoadConfigRejectsBadRedisDB(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "test")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_DB")
}

func TestValidateConfigProductionRules(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "production")

	err := ValidateConfig(&Config{
		ServerPort: "8080",
		DBDriver:   DriverSQLite,
		DBPath:     "chefsync.db",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "production requires postgres")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestValidateConfigSQLiteNeedsPath(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "test")

	err := ValidateConfig(&Config{
		ServerPort: "8080",
		DBDriver:   DriverSQLite,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH")
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "true")
	t.Setenv("ENV", "")
	assert.Equal(t, CI, GetEnvironment())

	t.Setenv("CI", "")
	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())
}
