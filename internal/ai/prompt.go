package ai

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the provider-agnostic instruction prompt for a set of
// requirements. Pure and deterministic: identical inputs yield byte-identical
// output.
func BuildPrompt(requirements, projectType string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert QA engineer. Generate industry-standard test cases based on the following requirements.\n\n")
	sb.WriteString(fmt.Sprintf("Project Type: %s\n\n", projectType))
	sb.WriteString("Requirements:\n")
	sb.WriteString(requirements)
	sb.WriteString("\n\n")
	sb.WriteString("Generate comprehensive test cases in JSON format. Each test case should include:\n")
	sb.WriteString("- Test ID (format: TC_XXX)\n")
	sb.WriteString("- Module (the feature/component being tested)\n")
	sb.WriteString("- Test Scenario (description of what is being tested)\n")
	sb.WriteString("- Preconditions (what must be true before the test)\n")
	sb.WriteString("- Steps (numbered list of test steps)\n")
	sb.WriteString("- Test Data (sample data to use)\n")
	sb.WriteString("- Expected Result (what should happen)\n")
	sb.WriteString("- Actual Result (leave as empty string)\n")
	sb.WriteString("- Status (leave as \"Pending\")\n")
	sb.WriteString("- Priority (High, Medium, or Low)\n")
	sb.WriteString("- Severity (Critical, Major, Minor, or Trivial)\n")
	sb.WriteString("- Edge Cases (any edge case considerations)\n\n")
	sb.WriteString("Return the response as a valid JSON object with this structure:\n")
	sb.WriteString(`{
    "test_cases": [
        {
            "test_id": "TC_001",
            "module": "...",
            "test_scenario": "...",
            "preconditions": "...",
            "steps": "1. Step one\n2. Step two\n3. Step three",
            "test_data": "...",
            "expected_result": "...",
            "actual_result": "",
            "status": "Pending",
            "priority": "High|Medium|Low",
            "severity": "Critical|Major|Minor|Trivial",
            "edge_cases": "..."
        }
    ],
    "summary": {
        "total_test_cases": X,
        "high_priority": X,
        "medium_priority": X,
        "low_priority": X
    }
}`)
	sb.WriteString("\n\nGenerate at least 5-10 comprehensive test cases covering positive, negative, and edge cases.\n")
	sb.WriteString("IMPORTANT: Return ONLY the JSON object, no additional text or markdown formatting.")

	return sb.String()
}
