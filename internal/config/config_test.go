package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	var cfg Config
	require.NoError(t, env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}))
	cfg.Sanitize()

	assert.Equal(t, "jobboard", cfg.App.AppName)
	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.True(t, cfg.App.MigrateOnStart)
	assert.Equal(t, "localhost", cfg.Database.DBHost)
	assert.Equal(t, int32(10), cfg.Database.PoolMaxConns)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiresIn)
}

func TestParse_Overrides(t *testing.T) {
	var cfg Config
	err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{
		"HTTP_PORT":          "9090",
		"DB_HOST":            "db.internal",
		"DB_POOL_MAX_CONNS":  "4",
		"DB_POOL_MIN_CONNS":  "8",
		"REDIS_ENABLED":      "false",
		"JWT_ACCESS_SECRET":  "a",
		"JWT_REFRESH_SECRET": "r",
	}})
	require.NoError(t, err)
	cfg.Sanitize()

	assert.Equal(t, "9090", cfg.App.HTTPPort)
	assert.Equal(t, "db.internal", cfg.Database.DBHost)
	assert.Equal(t, int32(4), cfg.Database.PoolMinConns, "min conns clamped to max")
	assert.False(t, cfg.Redis.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingSecrets(t *testing.T) {
	cfg := Config{App: AppConfig{HTTPPort: "8080"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "JWT_ACCESS_SECRET")
	assert.Contains(t, err.Error(), "JWT_REFRESH_SECRET")
}

func TestClientConfig_Sanitize(t *testing.T) {
	cfg := ClientConfig{BaseURL: " http://api.local:8080/ "}
	cfg.Sanitize()
	assert.Equal(t, "http://api.local:8080", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}
