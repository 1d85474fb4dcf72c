package config_test

import (
	"testing"
	"time"

	"github.com/arav6635-dot/Developer-Project-Validator/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "GEMINI_API_KEY", "GEMINI_MODEL",
		"DEEPSEEK_API_KEY", "DEEPSEEK_MODEL", "PROVIDER_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("GeminiModel = %q, want gemini-2.5-flash", cfg.GeminiModel)
	}
	if cfg.DeepSeekModel != "deepseek-chat" {
		t.Errorf("DeepSeekModel = %q, want deepseek-chat", cfg.DeepSeekModel)
	}
	if cfg.ProviderTimeout != 45*time.Second {
		t.Errorf("ProviderTimeout = %v, want 45s", cfg.ProviderTimeout)
	}
}

func TestLoad_MissingAPIKeyIsNotAnError(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DEEPSEEK_API_KEY", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load must not fail without provider keys: %v", err)
	}
	if cfg.HasProvider() {
		t.Error("HasProvider() = true, want false")
	}
}

func TestLoad_TrimsAndDetectsProvider(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "  key-with-padding  ")
	t.Setenv("DEEPSEEK_API_KEY", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GeminiAPIKey != "key-with-padding" {
		t.Errorf("GeminiAPIKey = %q, want trimmed value", cfg.GeminiAPIKey)
	}
	if !cfg.HasProvider() {
		t.Error("HasProvider() = false, want true")
	}
}

func TestLoad_ProviderTimeoutFormats(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"90", 90 * time.Second}, // bare integers are seconds
		{"2m", 2 * time.Minute},  // Go duration syntax
		{"nonsense", 45 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("PROVIDER_TIMEOUT", tt.value)

			cfg, err := config.Load()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.ProviderTimeout != tt.want {
				t.Errorf("ProviderTimeout = %v, want %v", cfg.ProviderTimeout, tt.want)
			}
		})
	}
}
