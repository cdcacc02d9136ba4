package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/recruitai")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 25, cfg.DBMaxConns)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, int64(10<<20), cfg.MaxResumeBytes)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("FRONTEND_URL", "https://recruit.example.com/")
	t.Setenv("MAX_RESUME_SIZE_MB", "2")
	t.Setenv("DB_SIMPLE_PROTOCOL", "true")
	t.Setenv("RATE_LIMIT_LOGIN_THRESHOLD", "not-a-number")
	t.Setenv("GOOGLE_API_KEY", "key-123")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://recruit.example.com", cfg.FrontendURL)
	assert.Equal(t, int64(2<<20), cfg.MaxResumeBytes)
	assert.True(t, cfg.DBSimpleProtocol)
	assert.Equal(t, 10, cfg.RateLimitLoginThreshold)
	assert.Equal(t, "key-123", cfg.GoogleAPIKey)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}
