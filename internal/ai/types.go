package ai

import "strings"

// Supported project types. Anything else falls back to ProjectWeb.
const (
	ProjectWeb     = "Web"
	ProjectMobile  = "Mobile"
	ProjectAPI     = "API"
	ProjectDesktop = "Desktop"
)

// NormalizeProjectType maps arbitrary input to a supported project type.
func NormalizeProjectType(s string) string {
	switch strings.TrimSpace(s) {
	case ProjectWeb, ProjectMobile, ProjectAPI, ProjectDesktop:
		return strings.TrimSpace(s)
	default:
		return ProjectWeb
	}
}

// TestCase is a single generated test-case record. Instances are created only
// by the generator (provider or mock path) and are immutable afterwards.
type TestCase struct {
	TestID         string `json:"test_id"`
	Module         string `json:"module"`
	TestScenario   string `json:"test_scenario"`
	Preconditions  string `json:"preconditions"`
	Steps          string `json:"steps"`
	TestData       string `json:"test_data"`
	ExpectedResult string `json:"expected_result"`
	ActualResult   string `json:"actual_result"`
	Status         string `json:"status"`
	Priority       string `json:"priority"`
	Severity       string `json:"severity"`
	EdgeCases      string `json:"edge_cases"`
}

// Summary counts test cases by priority.
type Summary struct {
	TotalTestCases int `json:"total_test_cases"`
	HighPriority   int `json:"high_priority"`
	MediumPriority int `json:"medium_priority"`
	LowPriority    int `json:"low_priority"`
}

// GenerationResult is what every generation attempt produces. Provider
// failures never surface as Go errors; they show up as a mock-backed result
// with Error set, so callers always have something to render.
type GenerationResult struct {
	TestCases   []TestCase `json:"test_cases"`
	Summary     Summary    `json:"summary"`
	Provider    string     `json:"provider"`
	Note        string     `json:"note,omitempty"`
	Error       string     `json:"error,omitempty"`
	RawResponse string     `json:"raw_response,omitempty"`
}

// ProviderDescriptor is the static metadata for one provider.
type ProviderDescriptor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Requires names the env credential the provider needs; empty for mock.
	Requires string `json:"requires,omitempty"`
}
