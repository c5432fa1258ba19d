package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "openrouter", cfg.Credentials.DefaultProvider)
	assert.Equal(t, 24*time.Hour, cfg.TokenExpiry)
	assert.Equal(t, int64(16<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 60*time.Second, cfg.GenerateTimeout)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DEFAULT_AI_PROVIDER", "groq")
	t.Setenv("GROQ_API_KEY", "k")
	t.Setenv("TOKEN_EXPIRY_HOURS", "2")
	t.Setenv("GENERATE_TIMEOUT_SECONDS", "5")

	cfg := FromEnv()

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "groq", cfg.Credentials.DefaultProvider)
	assert.Equal(t, "k", cfg.Credentials.GroqKey)
	assert.Equal(t, 2*time.Hour, cfg.TokenExpiry)
	assert.Equal(t, 5*time.Second, cfg.GenerateTimeout)
}

func TestEnvInt_IgnoresGarbage(t *testing.T) {
	t.Setenv("TOKEN_EXPIRY_HOURS", "not-a-number")

	assert.Equal(t, 24, envInt("TOKEN_EXPIRY_HOURS", 24))
}
