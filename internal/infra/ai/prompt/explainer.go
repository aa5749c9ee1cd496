package prompt

import (
	"fmt"
	"strings"
)

// GetSystemPrompt provides strict directions and schema for JSON output.
func GetSystemPrompt() string {
	return `You are a fraud analyst for an ad-scam detection product. You must produce one valid JSON object only (no markdown, no commentary) that follows the schema below. Do not include code fences.

Requirements:
- Output must be a single JSON object.
- verdict must be "fake" or "genuine".
- reasons is an array of short strings a non-technical user can understand.
- Do not invent facts about the text; reason only from what it contains.
- Keep advice to one or two sentences.

Schema (example with empty values):
{
  "verdict": "<fake|genuine>",
  "category": "<string>",
  "reasons": ["<string>"],
  "advice": "<string>"
}`
}

// GetUserPrompt builds the user message around the submitted text plus what
// the deterministic pipeline already concluded.
func GetUserPrompt(text, category string, triggered []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Explain whether this advertisement looks like a scam and why.\n\nText: %s\n\nKeyword category: %s\n", text, category)
	if len(triggered) > 0 {
		fmt.Fprintf(&b, "Deterministic rules already triggered: %s\n", strings.Join(triggered, ", "))
	} else {
		b.WriteString("No deterministic rule triggered.\n")
	}
	b.WriteString("Respond with the JSON per schema.")
	return b.String()
}
