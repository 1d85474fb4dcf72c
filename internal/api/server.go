// Package api implements the HTTP layer for the Developer Project Validator.
// Handlers are methods on *Server. Each handler file is responsible for one
// resource group and only imports the dependencies it actually uses.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arav6635-dot/Developer-Project-Validator/internal/report"
	"github.com/arav6635-dot/Developer-Project-Validator/web"
)

// Config holds values fixed at startup.
type Config struct {
	// Env is "production", "staging", or "development".
	Env string

	// Build is the build identifier reported by /health.
	Build string

	// Instance is the per-process id reported by /health, useful for telling
	// replicas apart behind a load balancer.
	Instance string
}

// Server holds all shared dependencies. Each handler file attaches methods to
// this type and uses only the fields it needs.
type Server struct {
	// analyzer runs the one idea → report round trip. Constructed once at
	// startup, never reconfigured.
	analyzer *report.Analyzer

	cfg    Config
	logger *slog.Logger
}

// NewServer constructs the Server and wires the chi router. The returned
// http.Handler is ready to pass to http.ListenAndServe.
func NewServer(analyzer *report.Analyzer, cfg Config, logger *slog.Logger) http.Handler {
	s := &Server{
		analyzer: analyzer,
		cfg:      cfg,
		logger:   logger,
	}

	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// ── Global middleware ─────────────────────────────────────────────────────
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(s.metricsMiddleware)
	// Slightly above the provider client timeout so the analyze handler can
	// still report a categorized upstream failure instead of being cut off.
	r.Use(middleware.Timeout(60 * time.Second))

	// ── Health & metrics ──────────────────────────────────────────────────────
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	// ── Analysis ──────────────────────────────────────────────────────────────
	r.Post("/analyze", s.handleAnalyze)

	// ── Static UI ─────────────────────────────────────────────────────────────
	r.Get("/", s.handleIndex)
	r.Handle("/static/*", http.FileServerFS(web.Files))

	return r
}

// handleIndex serves the single-page UI.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeFileFS(w, r, web.Files, "index.html")
}
