package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "test_cases": [
    {
      "test_id": "TC_001",
      "module": "Login",
      "test_scenario": "Valid login",
      "steps": "1. Open page\n2. Submit",
      "priority": "High",
      "severity": "Critical"
    }
  ],
  "summary": {"total_test_cases": 1, "high_priority": 1, "medium_priority": 0, "low_priority": 0}
}`

func TestParseResponse_PlainJSON(t *testing.T) {
	result := ParseResponse(sampleJSON, "groq")

	require.Empty(t, result.Error)
	require.Len(t, result.TestCases, 1)
	assert.Equal(t, "groq", result.Provider)
	assert.Equal(t, "Login", result.TestCases[0].Module)
	assert.Equal(t, 1, result.Summary.TotalTestCases)
}

func TestParseResponse_Fenced(t *testing.T) {
	plain := ParseResponse(sampleJSON, "gemini")

	for name, wrapped := range map[string]string{
		"json tag": "```json\n" + sampleJSON + "\n```",
		"no tag":   "```\n" + sampleJSON + "\n```",
		"tilde":    "~~~\n" + sampleJSON + "\n~~~",
		"padded":   "\n\n```json\n" + sampleJSON + "\n```\n\n",
	} {
		t.Run(name, func(t *testing.T) {
			result := ParseResponse(wrapped, "gemini")
			require.Empty(t, result.Error)
			assert.Equal(t, plain, result)
		})
	}
}

func TestParseResponse_EmbeddedInProse(t *testing.T) {
	raw := "Sure! Here are your test cases:\n\n" + sampleJSON + "\n\nLet me know if you need more."

	result := ParseResponse(raw, "anthropic")

	require.Empty(t, result.Error)
	require.Len(t, result.TestCases, 1)
	assert.Equal(t, "anthropic", result.Provider)
}

func TestParseResponse_Garbage(t *testing.T) {
	raw := strings.Repeat("not json at all. ", 60)

	result := ParseResponse(raw, "together")

	assert.Empty(t, result.TestCases)
	assert.NotNil(t, result.TestCases, "degraded result still carries an empty list")
	assert.Equal(t, "Failed to parse AI response", result.Error)
	assert.Equal(t, "together", result.Provider)
	assert.LessOrEqual(t, len(result.RawResponse), 500)
	assert.NotEmpty(t, result.RawResponse)
}

func TestParseResponse_UnbalancedBraces(t *testing.T) {
	result := ParseResponse("{ this is { not valid json", "groq")

	assert.Equal(t, "Failed to parse AI response", result.Error)
	assert.Empty(t, result.TestCases)
}
