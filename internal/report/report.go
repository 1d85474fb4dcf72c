// Package report implements the Idea Report domain: the fixed seven-field
// analysis schema, the provider prompt, tolerant extraction of the model's
// JSON output, and the Analyzer that ties them together.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Report is the structured result of analyzing one project idea. It lives for
// the duration of a single request and is never persisted.
type Report struct {
	MarketCompetition     string   `json:"market_competition"`
	MonetizationPotential string   `json:"monetization_potential"`
	TargetUsers           string   `json:"target_users"`
	FeatureSuggestions    []string `json:"feature_suggestions"`
	MVPPlan               []string `json:"mvp_plan"`
	RiskScore             string   `json:"risk_score"`
	Summary               string   `json:"summary"`
}

// requiredKeys is the full schema, in response order. Every key must be
// present in the provider output; list membership decides coercion rules.
var requiredKeys = []string{
	"market_competition",
	"monetization_potential",
	"target_users",
	"feature_suggestions",
	"mvp_plan",
	"risk_score",
	"summary",
}

var listKeys = map[string]bool{
	"feature_suggestions": true,
	"mvp_plan":            true,
}

// decodeReport builds a Report from an extracted JSON object. Every one of the
// seven keys must be present — a missing or blank required field is an error,
// never silently defaulted (display-time placeholders are the client's job).
// Values are coerced leniently: scalars become their string form, a scalar in
// a list position becomes a single-item list, list items are trimmed and
// blanks dropped. An empty list is valid; a missing one is not.
func decodeReport(payload []byte) (Report, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return Report{}, fmt.Errorf("decode object: %w", err)
	}

	var r Report
	for _, key := range requiredKeys {
		raw, ok := fields[key]
		if !ok {
			return Report{}, fmt.Errorf("missing required field %q", key)
		}

		if listKeys[key] {
			items, err := coerceList(raw)
			if err != nil {
				return Report{}, fmt.Errorf("field %q: %w", key, err)
			}
			switch key {
			case "feature_suggestions":
				r.FeatureSuggestions = items
			case "mvp_plan":
				r.MVPPlan = items
			}
			continue
		}

		text, err := coerceText(raw)
		if err != nil {
			return Report{}, fmt.Errorf("field %q: %w", key, err)
		}
		if text == "" {
			return Report{}, fmt.Errorf("required field %q is blank", key)
		}
		switch key {
		case "market_competition":
			r.MarketCompetition = text
		case "monetization_potential":
			r.MonetizationPotential = text
		case "target_users":
			r.TargetUsers = text
		case "risk_score":
			r.RiskScore = text
		case "summary":
			r.Summary = text
		}
	}

	return r, nil
}

// coerceText renders a JSON value as a trimmed string. Strings pass through;
// numbers and booleans are stringified (models routinely return risk scores
// as bare numbers); objects and arrays are rejected.
func coerceText(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s), nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("invalid JSON value: %w", err)
	}
	switch v.(type) {
	case float64, bool:
		return strings.TrimSpace(fmt.Sprintf("%v", v)), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("expected a string, got %T", v)
	}
}

// coerceList renders a JSON value as a list of trimmed, non-blank strings.
// A scalar becomes a single-item list.
func coerceList(raw json.RawMessage) ([]string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		// Scalar in a list position — wrap it.
		text, terr := coerceText(raw)
		if terr != nil {
			return nil, fmt.Errorf("expected a list: %w", err)
		}
		if text == "" {
			return []string{}, nil
		}
		return []string{text}, nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		text, err := coerceText(item)
		if err != nil {
			return nil, err
		}
		if text != "" {
			out = append(out, text)
		}
	}
	return out, nil
}
