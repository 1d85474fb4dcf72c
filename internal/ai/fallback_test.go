package ai_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/arav6635-dot/Developer-Project-Validator/internal/ai"
)

type stubGenerator struct {
	output string
	err    error
	calls  int
}

func (g *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	g.calls++
	return g.output, g.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFallback_PrimarySucceeds_SecondaryUntouched(t *testing.T) {
	primary := &stubGenerator{output: "primary output"}
	secondary := &stubGenerator{output: "secondary output"}
	gen := ai.NewFallbackGenerator(primary, secondary, discardLogger())

	got, err := gen.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "primary output" {
		t.Errorf("got %q, want primary output", got)
	}
	if secondary.calls != 0 {
		t.Errorf("secondary called %d times, want 0", secondary.calls)
	}
}

func TestFallback_PrimaryFails_SecondaryUsed(t *testing.T) {
	primary := &stubGenerator{err: errors.New("quota exceeded")}
	secondary := &stubGenerator{output: "secondary output"}
	gen := ai.NewFallbackGenerator(primary, secondary, discardLogger())

	got, err := gen.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "secondary output" {
		t.Errorf("got %q, want secondary output", got)
	}
	if primary.calls != 1 || secondary.calls != 1 {
		t.Errorf("calls primary=%d secondary=%d, want 1/1", primary.calls, secondary.calls)
	}
}

func TestFallback_NoSecondary_PrimaryErrorSurfaces(t *testing.T) {
	primaryErr := &ai.CallError{Provider: "gemini", StatusCode: 429, Category: "RESOURCE_EXHAUSTED", Message: "quota"}
	gen := ai.NewFallbackGenerator(&stubGenerator{err: primaryErr}, nil, discardLogger())

	_, err := gen.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error")
	}
	var callErr *ai.CallError
	if !errors.As(err, &callErr) {
		t.Errorf("primary CallError not preserved: %v", err)
	}
}

func TestFallback_NilPrimary_GoesStraightToSecondary(t *testing.T) {
	secondary := &stubGenerator{output: "secondary output"}
	gen := ai.NewFallbackGenerator(nil, secondary, discardLogger())

	got, err := gen.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "secondary output" {
		t.Errorf("got %q, want secondary output", got)
	}
}

func TestCallError_Message(t *testing.T) {
	withCategory := &ai.CallError{Provider: "gemini", Category: "PERMISSION_DENIED", Message: "denied"}
	if !strings.Contains(withCategory.Error(), "PERMISSION_DENIED") {
		t.Errorf("Error() = %q, want category included", withCategory.Error())
	}

	withoutCategory := &ai.CallError{Provider: "deepseek", StatusCode: 500, Message: "boom"}
	if !strings.Contains(withoutCategory.Error(), "500") {
		t.Errorf("Error() = %q, want status included", withoutCategory.Error())
	}
}
