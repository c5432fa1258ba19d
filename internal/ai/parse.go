package ai

import (
	"encoding/json"
	"strings"
)

// ParseResponse extracts a GenerationResult from raw model output. It never
// fails: when no JSON object can be recovered it returns a degraded result
// carrying a parse error and a truncated copy of the raw text.
//
// Recovery order: strip one pair of markdown fences and parse directly, then
// fall back to the widest {...} region of the raw text, then give up.
func ParseResponse(raw, provider string) GenerationResult {
	cleaned := stripFences(raw)

	var result GenerationResult
	if err := json.Unmarshal([]byte(cleaned), &result); err == nil {
		result.Provider = provider
		return result
	}

	if start, end := strings.Index(raw, "{"), strings.LastIndex(raw, "}"); start >= 0 && end > start {
		result = GenerationResult{}
		if err := json.Unmarshal([]byte(raw[start:end+1]), &result); err == nil {
			result.Provider = provider
			return result
		}
	}

	return GenerationResult{
		TestCases:   []TestCase{},
		Error:       "Failed to parse AI response",
		Provider:    provider,
		RawResponse: truncate(raw, 500),
	}
}

// stripFences removes exactly one leading and one trailing markdown code
// fence (with or without a language tag) around the text.
func stripFences(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > 0 && (strings.HasPrefix(lines[0], "```") || strings.HasPrefix(lines[0], "~~~")) {
		lines = lines[1:]
	}
	if len(lines) > 0 && (strings.HasPrefix(lines[len(lines)-1], "```") || strings.HasPrefix(lines[len(lines)-1], "~~~")) {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
