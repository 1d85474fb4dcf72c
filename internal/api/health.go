package api

import "net/http"

// ─── GET /health ─────────────────────────────────────────────────────────────

type healthResponse struct {
	Status   string `json:"status"`
	Build    string `json:"build"`
	Instance string `json:"instance"`
}

// handleHealth is the liveness probe. It answers as long as the process is up,
// regardless of whether an AI provider is configured or reachable.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Build:    s.cfg.Build,
		Instance: s.cfg.Instance,
	})
}
