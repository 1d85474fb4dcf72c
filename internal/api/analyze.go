package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arav6635-dot/Developer-Project-Validator/internal/ai"
	"github.com/arav6635-dot/Developer-Project-Validator/internal/report"
)

// ─── POST /analyze ───────────────────────────────────────────────────────────

type analyzeRequest struct {
	Idea string `json:"idea"`
}

// handleAnalyze runs one idea through the analyzer and returns the full
// Idea Report, or a JSON error envelope mapped from the failure class.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !decode(w, r, &req) {
		analyzeOutcomes.WithLabelValues("bad_request").Inc()
		return
	}

	rep, err := s.analyzer.Analyze(r.Context(), req.Idea)
	if err != nil {
		s.respondAnalyzeErr(w, r, err)
		return
	}

	analyzeOutcomes.WithLabelValues("ok").Inc()
	respond(w, http.StatusOK, rep)
}

// respondAnalyzeErr maps the analyzer's error taxonomy onto HTTP statuses.
// Messages are chosen for the status area of the UI; full errors go to the
// log only.
func (s *Server) respondAnalyzeErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, report.ErrEmptyIdea):
		analyzeOutcomes.WithLabelValues("validation_error").Inc()
		respondErr(w, http.StatusBadRequest, "Please enter a project idea.")

	case errors.Is(err, report.ErrNotConfigured):
		analyzeOutcomes.WithLabelValues("config_error").Inc()
		respondErr(w, http.StatusServiceUnavailable,
			"Analysis is not configured on this server: no AI provider API key is set.")

	case errors.Is(err, report.ErrUnavailable):
		analyzeOutcomes.WithLabelValues("provider_unavailable").Inc()
		s.logger.Error("provider call failed", "error", err, logField(r))
		respondErr(w, http.StatusBadGateway, providerFailureMessage(err))

	case errors.Is(err, report.ErrBadOutput):
		analyzeOutcomes.WithLabelValues("provider_bad_output").Inc()
		s.logger.Error("provider output unusable", "error", err, logField(r))
		respondErr(w, http.StatusBadGateway, "Model response was malformed. Please try again.")

	default:
		analyzeOutcomes.WithLabelValues("internal_error").Inc()
		s.respondInternalErr(w, r, err)
	}
}

// providerFailureMessage builds the client-facing message for an upstream
// failure. When the provider classified its own error, the category and its
// message are surfaced (they are credential-free: the API key travels only in
// a request header, never in URLs or provider error bodies). Transport errors
// get a generic message — their strings can embed arbitrary dial detail.
func providerFailureMessage(err error) string {
	var callErr *ai.CallError
	if errors.As(err, &callErr) {
		category := callErr.Category
		if category == "" {
			category = strconv.Itoa(callErr.StatusCode)
		}
		return "AI provider error (" + category + "): " + callErr.Message
	}
	return "AI provider request failed. Please try again."
}
