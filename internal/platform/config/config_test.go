package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Postgres.Host)
	assert.Equal(t, "disable", cfg.Database.Postgres.SSLMode)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("CACHE_TTL", "15m")
	t.Setenv("DEBUG", "true")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Postgres.Host)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, 15*time.Minute, cfg.Cache.TTL)
	assert.True(t, cfg.Server.Debug)
}

func TestValidate(t *testing.T) {
	t.Run("invalid port", func(t *testing.T) {
		cfg := &Config{
			Server:   ServerConfig{Port: -1},
			Database: DatabaseConfig{Postgres: PostgreSQLConfig{Host: "h", Database: "d"}},
			Cache:    CacheConfig{Backend: "memory"},
		}
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing database name", func(t *testing.T) {
		cfg := &Config{
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Postgres: PostgreSQLConfig{Host: "h"}},
			Cache:    CacheConfig{Backend: "memory"},
		}
		assert.Error(t, cfg.Validate())
	})

	t.Run("unsupported cache backend", func(t *testing.T) {
		cfg := &Config{
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Postgres: PostgreSQLConfig{Host: "h", Database: "d"}},
			Cache:    CacheConfig{Backend: "memcached"},
		}
		assert.Error(t, cfg.Validate())
	})
}
