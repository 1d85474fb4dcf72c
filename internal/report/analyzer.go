package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/arav6635-dot/Developer-Project-Validator/internal/ai"
)

// Error taxonomy. Handlers map these to HTTP statuses with errors.Is; every
// failure out of Analyze wraps exactly one of them.
var (
	// ErrEmptyIdea: the idea was empty after trimming. The provider is
	// never called.
	ErrEmptyIdea = errors.New("idea must not be empty")

	// ErrNotConfigured: no provider API key was configured at startup.
	ErrNotConfigured = errors.New("no AI provider configured")

	// ErrUnavailable: the provider call itself failed (network, auth, quota).
	ErrUnavailable = errors.New("AI provider unavailable")

	// ErrBadOutput: the provider answered but its output could not be parsed
	// into the report schema.
	ErrBadOutput = errors.New("unusable AI provider output")
)

// Analyzer turns a project idea into an Idea Report via one provider call.
// It is constructed once at startup and safe for concurrent use; it holds no
// per-request state.
type Analyzer struct {
	// gen may be nil when no provider key is configured — Analyze then fails
	// with ErrNotConfigured while the rest of the server stays up.
	gen    ai.Generator
	logger *slog.Logger
}

// NewAnalyzer wires the Analyzer. gen may be nil (unconfigured provider).
func NewAnalyzer(gen ai.Generator, logger *slog.Logger) *Analyzer {
	return &Analyzer{gen: gen, logger: logger}
}

// Analyze validates the idea, prompts the provider once, and parses the
// output into a complete Report. No retries — a single round trip per call —
// and no partial reports: any gap in the provider output is an ErrBadOutput.
func (a *Analyzer) Analyze(ctx context.Context, idea string) (Report, error) {
	idea = strings.TrimSpace(idea)
	if idea == "" {
		return Report{}, ErrEmptyIdea
	}
	if a.gen == nil {
		return Report{}, ErrNotConfigured
	}

	raw, err := a.gen.Generate(ctx, BuildPrompt(idea))
	if err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	a.logger.Debug("provider output received", "bytes", len(raw))

	payload, err := extractObject(raw)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrBadOutput, err)
	}

	rep, err := decodeReport(payload)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrBadOutput, err)
	}

	return rep, nil
}
