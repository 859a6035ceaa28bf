package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"GTLAND_APP_NAME":          os.Getenv("GTLAND_APP_NAME"),
		"GTLAND_APP_ENV":           os.Getenv("GTLAND_APP_ENV"),
		"GTLAND_APP_PORT":          os.Getenv("GTLAND_APP_PORT"),
		"GTLAND_DATABASE_HOST":     os.Getenv("GTLAND_DATABASE_HOST"),
		"GTLAND_DATABASE_PORT":     os.Getenv("GTLAND_DATABASE_PORT"),
		"GTLAND_DATABASE_PASSWORD": os.Getenv("GTLAND_DATABASE_PASSWORD"),
		"GTLAND_DATABASE_SSLMODE":  os.Getenv("GTLAND_DATABASE_SSLMODE"),
		"GTLAND_IMPORT_MAX_ROWS":   os.Getenv("GTLAND_IMPORT_MAX_ROWS"),
		"GTLAND_REDIS_HOST":        os.Getenv("GTLAND_REDIS_HOST"),
	}
	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()
	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "giftcard-ledger", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "giftcard", cfg.Database.DBName)
		assert.Equal(t, 50000, cfg.Import.MaxRows)
		assert.Equal(t, int64(20), cfg.Import.MaxUploadMB)
		assert.Equal(t, 100, cfg.Import.MaxErrorList)
		assert.Equal(t, 6379, cfg.Redis.Port)
		assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		clearEnv()
		os.Setenv("GTLAND_APP_PORT", "9000")
		os.Setenv("GTLAND_DATABASE_HOST", "db.internal")
		os.Setenv("GTLAND_IMPORT_MAX_ROWS", "200")
		os.Setenv("GTLAND_REDIS_HOST", "redis.internal")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 200, cfg.Import.MaxRows)
		assert.Equal(t, "redis.internal", cfg.Redis.Host)
	})

	t.Run("production requires database password", func(t *testing.T) {
		clearEnv()
		os.Setenv("GTLAND_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("production rejects disabled ssl", func(t *testing.T) {
		clearEnv()
		os.Setenv("GTLAND_APP_ENV", "production")
		os.Setenv("GTLAND_DATABASE_PASSWORD", "secret")
		os.Setenv("GTLAND_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")
	})
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "giftcard",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "giftcard")
	// Special characters in the password must be escaped.
	assert.NotContains(t, dsn, "p@ss/word")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestRedisAddr(t *testing.T) {
	cfg := RedisConfig{Host: "localhost", Port: 6379}
	assert.Equal(t, "localhost:6379", cfg.Addr())
}
