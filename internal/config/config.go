// Package config loads and validates all environment variables at startup.
// Every other package receives typed values — nothing reads os.Getenv directly.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the fully-parsed application configuration.
type Config struct {
	// ── Server ────────────────────────────────────────────────────────────────
	Port string // default "8080"
	Env  string // "development" | "staging" | "production"

	// ── Gemini ────────────────────────────────────────────────────────────────
	// GeminiAPIKey may be empty. The server still starts and serves /health;
	// /analyze reports a configuration error until a key is provided.
	GeminiAPIKey string
	GeminiModel  string // default "gemini-2.5-flash"

	// ── DeepSeek ──────────────────────────────────────────────────────────────
	// Optional. When set, DeepSeek is used as the fallback if the Gemini call
	// fails. If DEEPSEEK_API_KEY is empty, no fallback is configured.
	DeepSeekAPIKey string
	DeepSeekModel  string // default "deepseek-chat"

	// ── Provider call ─────────────────────────────────────────────────────────
	ProviderTimeout time.Duration // default 45s, outbound HTTP client timeout
}

// Load reads all environment variables and returns a Config.
// It automatically loads a .env file from the working directory when present,
// so plain `go run ./cmd/api` works in development without any wrapper.
// Real environment variables always take precedence over .env values.
//
// A missing GEMINI_API_KEY is deliberately not an error here: the process must
// come up and answer /health even when no provider is configured.
func Load() (*Config, error) {
	// godotenv.Load never overwrites variables that are already set.
	_ = godotenv.Load()

	c := &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		GeminiAPIKey:    strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		DeepSeekAPIKey:  strings.TrimSpace(os.Getenv("DEEPSEEK_API_KEY")),
		DeepSeekModel:   getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
		ProviderTimeout: getEnvAsDuration("PROVIDER_TIMEOUT", 45*time.Second),
	}

	return c, nil
}

// HasProvider reports whether at least one AI provider key is configured.
func (c *Config) HasProvider() bool {
	return c.GeminiAPIKey != "" || c.DeepSeekAPIKey != ""
}

// ─── HELPERS ─────────────────────────────────────────────────────────────────

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	// Plain integers are treated as seconds.
	if value, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(value) * time.Second
	}
	// Fall back to Go duration syntax: "30s", "5m", "1h", etc.
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	return defaultValue
}
