package report

import "fmt"

// instructionTemplate is the fixed prompt sent to the provider. The model is
// told to respond in the exact Report JSON shape so we can parse it without
// heuristics; the extraction step still tolerates fences and stray prose.
const instructionTemplate = `You are a practical startup advisor for solo developers.
Analyze the project idea below and keep answers concise and concrete.

Respond ONLY with valid JSON matching this exact schema, no markdown fences, no preamble:
{
  "market_competition": "...",
  "monetization_potential": "...",
  "target_users": "...",
  "feature_suggestions": ["...", "..."],
  "mvp_plan": ["...", "..."],
  "risk_score": "...",
  "summary": "..."
}

Rules:
- market_competition, monetization_potential and target_users are short paragraphs (under 60 words each).
- feature_suggestions is a short list of concrete features worth building.
- mvp_plan is an ordered list of build steps, first step first.
- risk_score is a short verdict containing a risk level or a 1-10 rating.
- summary is your final verdict in 2-3 sentences.

Project idea:
%s`

// BuildPrompt embeds the user's idea into the fixed instruction template.
func BuildPrompt(idea string) string {
	return fmt.Sprintf(instructionTemplate, idea)
}
