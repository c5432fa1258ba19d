// Package config resolves the process configuration from the environment,
// once, at startup.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/casegen-ai/casegen/internal/ai"
)

// Config holds every tunable the server reads. Values resolve from the
// environment with the defaults the service ships with.
type Config struct {
	Port        string
	DatabaseDSN string

	Credentials ai.Credentials

	TokenExpiry     time.Duration
	MaxUploadBytes  int64
	GenerateTimeout time.Duration
}

// FromEnv loads .env if present and builds the configuration.
func FromEnv() Config {
	_ = godotenv.Load()

	return Config{
		Port:        env("PORT", "8080"),
		DatabaseDSN: env("DATABASE_DSN", ""),
		Credentials: ai.Credentials{
			OpenRouterKey: env("OPENROUTER_API_KEY", ""),
			GoogleKey:     env("GOOGLE_API_KEY", ""),
			GroqKey:       env("GROQ_API_KEY", ""),
			TogetherKey:   env("TOGETHER_API_KEY", ""),
			AnthropicKey:  env("ANTHROPIC_API_KEY", ""),

			OpenRouterModel: env("OPENROUTER_MODEL", ""),
			GeminiModel:     env("GEMINI_MODEL", ""),
			GroqModel:       env("GROQ_MODEL", ""),
			TogetherModel:   env("TOGETHER_MODEL", ""),
			AnthropicModel:  env("AI_MODEL", ""),

			DefaultProvider: env("DEFAULT_AI_PROVIDER", "openrouter"),
		},
		TokenExpiry:     time.Duration(envInt("TOKEN_EXPIRY_HOURS", 24)) * time.Hour,
		MaxUploadBytes:  int64(envInt("MAX_UPLOAD_MB", 16)) << 20,
		GenerateTimeout: time.Duration(envInt("GENERATE_TIMEOUT_SECONDS", 60)) * time.Second,
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		n, _ := strconv.Atoi(v)
		if n > 0 {
			return n
		}
	}
	return def
}
