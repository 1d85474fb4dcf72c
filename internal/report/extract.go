package report

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// fenceRE matches a ```json ... ``` (or bare ```) fenced block.
var fenceRE = regexp.MustCompile("(?is)```(?:json)?\\s*([\\s\\S]*?)\\s*```")

// extractObject pulls a single JSON object out of raw model output.
//
// Models asked for JSON still wrap it in prose, markdown fences, or emit
// near-JSON with trailing commas and single quotes. Candidates are tried in
// order of decreasing trust:
//
//  1. the whole text, the first fenced code block, and the first balanced
//     {...} span, each as strict JSON
//  2. the same candidates run through jsonrepair (trailing commas, single
//     quotes, truncation)
//
// Strict parses of narrower candidates are preferred over any repair, so a
// repair heuristic never rewrites output that was extractable as-is. If no
// candidate yields a JSON object the extraction fails — a report is never
// assembled from guesswork.
func extractObject(text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty model output")
	}

	candidates := []string{text}
	if fence := fenceRE.FindStringSubmatch(text); fence != nil {
		candidates = append(candidates, strings.TrimSpace(fence[1]))
	}
	if span := firstBalancedObject(text); span != "" {
		candidates = append(candidates, span)
	}

	for _, candidate := range candidates {
		if obj, ok := asObject(candidate); ok {
			return obj, nil
		}
	}
	for _, candidate := range candidates {
		if repaired, err := jsonrepair.JSONRepair(candidate); err == nil {
			if obj, ok := asObject(repaired); ok {
				return obj, nil
			}
		}
	}

	return nil, fmt.Errorf("no JSON object found in model output (starts with %.120q)", text)
}

// asObject reports whether s is a JSON object and returns its bytes.
func asObject(s string) ([]byte, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") {
		return nil, false
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &probe); err != nil {
		return nil, false
	}
	return []byte(s), true
}

// firstBalancedObject returns the first {...} span with balanced braces,
// or "" when none exists. Braces inside string literals are counted too —
// jsonrepair cleans up any resulting short or long cut on the retry path.
func firstBalancedObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
