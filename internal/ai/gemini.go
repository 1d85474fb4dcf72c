package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// geminiClient is the concrete Generator backed by the Gemini
// generateContent API.
type geminiClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiClient returns a Generator that calls the Gemini API.
//   - apiKey:  your GEMINI_API_KEY
//   - model:   e.g. "gemini-2.5-flash"
//   - timeout: outbound HTTP client timeout for the whole call
func NewGeminiClient(apiKey, model string, timeout time.Duration) Generator {
	return &geminiClient{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ─── GEMINI API SHAPES ────────────────────────────────────────────────────────

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// generationConfig asks the model for a JSON document directly.
// responseMimeType "application/json" suppresses prose and markdown fences in
// the common case; the analyzer still parses tolerantly for the rest.
type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// ─── IMPLEMENTATION ───────────────────────────────────────────────────────────

// Generate calls Gemini generateContent and returns the text of the first
// candidate's first part.
func (c *geminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:      0.35,
			MaxOutputTokens:  1400,
			ResponseMimeType: "application/json",
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := "https://generativelanguage.googleapis.com/v1beta/models/" + c.model + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("gemini: build request: %w", err)
	}

	// The key goes in a header, never the URL — URLs show up in wrapped
	// transport errors and must stay credential-free.
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB cap
	if err != nil {
		return "", fmt.Errorf("gemini: read response body: %w", err)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return "", fmt.Errorf("gemini: unmarshal response: %w", err)
	}

	if parsed.Error != nil {
		return "", &CallError{
			Provider:   "gemini",
			StatusCode: parsed.Error.Code,
			Category:   parsed.Error.Status,
			Message:    parsed.Error.Message,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &CallError{
			Provider:   "gemini",
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status %d: %.200s", resp.StatusCode, string(respBytes)),
		}
	}

	for _, cand := range parsed.Candidates {
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}

	return "", fmt.Errorf("gemini: no text content in response")
}
