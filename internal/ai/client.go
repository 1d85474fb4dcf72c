// Package ai defines the interface for generative-AI text completion and
// provides Gemini and DeepSeek implementations.
package ai

import (
	"context"
	"fmt"
)

// Generator is the single opaque operation the analyzer needs from a
// provider: one prompt in, one raw text completion out. The concrete
// implementations live in gemini.go and deepseek.go. Tests inject a stub
// that returns canned responses.
type Generator interface {
	// Generate sends one prompt and returns the provider's raw text output.
	// The text is not guaranteed to be clean JSON — the caller owns parsing.
	//
	// Implementations must be safe to call concurrently and must never embed
	// the API credential in a returned error.
	Generate(ctx context.Context, prompt string) (string, error)
}

// CallError is returned when the provider answered the HTTP call but signalled
// a failure (auth, quota, malformed request). StatusCode and Category carry
// the provider's own classification when it supplied one.
type CallError struct {
	Provider   string // "gemini" | "deepseek"
	StatusCode int    // HTTP status, 0 when unknown
	Category   string // provider error type, e.g. "PERMISSION_DENIED"
	Message    string // provider error message, credential-free
}

func (e *CallError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("%s: API error %s: %s", e.Provider, e.Category, e.Message)
	}
	return fmt.Sprintf("%s: API error (status %d): %s", e.Provider, e.StatusCode, e.Message)
}
