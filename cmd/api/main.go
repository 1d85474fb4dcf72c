package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/arav6635-dot/Developer-Project-Validator/internal/ai"
	"github.com/arav6635-dot/Developer-Project-Validator/internal/api"
	"github.com/arav6635-dot/Developer-Project-Validator/internal/config"
	"github.com/arav6635-dot/Developer-Project-Validator/internal/report"
)

// build identifies the running revision in /health. Overridable at link time:
//
//	go build -ldflags "-X main.build=$(git rev-parse --short HEAD)"
var build = "dev"

func main() {
	// ── Logger ────────────────────────────────────────────────────────────────
	// JSON in production, pretty text in development.
	var logger *slog.Logger
	if os.Getenv("ENV") == "production" {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	// ── Config ────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	instance := uuid.NewString()
	logger.Info("config loaded", "env", cfg.Env, "port", cfg.Port, "build", build, "instance", instance)

	// ── AI ────────────────────────────────────────────────────────────────────
	// Gemini is primary. DeepSeek is the fallback when DEEPSEEK_API_KEY is
	// also set. With no key at all the server still starts: /health stays up
	// and /analyze reports a configuration error.
	var generator ai.Generator
	switch {
	case cfg.GeminiAPIKey != "" && cfg.DeepSeekAPIKey != "":
		primary := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.ProviderTimeout)
		secondary := ai.NewDeepSeekClient(cfg.DeepSeekAPIKey, cfg.DeepSeekModel, cfg.ProviderTimeout)
		generator = ai.NewFallbackGenerator(primary, secondary, logger)
		logger.Info("ai: using Gemini with DeepSeek fallback", "model", cfg.GeminiModel)
	case cfg.GeminiAPIKey != "":
		generator = ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.ProviderTimeout)
		logger.Info("ai: using Gemini only", "model", cfg.GeminiModel)
	case cfg.DeepSeekAPIKey != "":
		generator = ai.NewDeepSeekClient(cfg.DeepSeekAPIKey, cfg.DeepSeekModel, cfg.ProviderTimeout)
		logger.Info("ai: using DeepSeek only", "model", cfg.DeepSeekModel)
	default:
		logger.Warn("ai: no provider API key set — /analyze will return a configuration error")
	}

	analyzer := report.NewAnalyzer(generator, logger)

	// ── HTTP server ───────────────────────────────────────────────────────────
	handler := api.NewServer(analyzer, api.Config{
		Env:      cfg.Env,
		Build:    build,
		Instance: instance,
	}, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second, // generous — the analyze round trip can be slow
		IdleTimeout:  120 * time.Second,
	}

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until either a signal arrives or the server dies unexpectedly.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	// Give in-flight requests up to 20 seconds to finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
