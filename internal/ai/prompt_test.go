package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_Deterministic(t *testing.T) {
	a := BuildPrompt("Login should allow valid users", ProjectWeb)
	b := BuildPrompt("Login should allow valid users", ProjectWeb)

	assert.Equal(t, a, b, "identical inputs must yield byte-identical prompts")
}

func TestBuildPrompt_EmbedsInputs(t *testing.T) {
	prompt := BuildPrompt("Checkout must support refunds", ProjectAPI)

	assert.Contains(t, prompt, "Checkout must support refunds")
	assert.Contains(t, prompt, "Project Type: API")
	assert.Contains(t, prompt, `"test_cases"`)
	assert.Contains(t, prompt, "Return ONLY the JSON object")
	assert.Contains(t, prompt, "5-10 comprehensive test cases")
}

func TestNormalizeProjectType(t *testing.T) {
	assert.Equal(t, ProjectWeb, NormalizeProjectType(""))
	assert.Equal(t, ProjectWeb, NormalizeProjectType("Console"))
	assert.Equal(t, ProjectMobile, NormalizeProjectType("Mobile"))
	assert.Equal(t, ProjectDesktop, NormalizeProjectType(" Desktop "))
}
