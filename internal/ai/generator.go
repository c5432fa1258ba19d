package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultTimeout bounds a single provider call.
const DefaultTimeout = 60 * time.Second

// Generator orchestrates a single generation request: it resolves the
// requested provider against the registry, invokes it once, parses the
// response, and normalizes the result. Every failure path degrades to the
// mock template; Generate never returns an error.
type Generator struct {
	registry *Registry
	timeout  time.Duration
}

// NewGenerator wires a generator to an already-built registry.
func NewGenerator(registry *Registry, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Generator{registry: registry, timeout: timeout}
}

// Registry exposes the generator's provider registry.
func (g *Generator) Registry() *Registry {
	return g.registry
}

// Generate produces test cases for the given requirements. providerID may be
// empty, in which case the configured default applies. A requested provider
// that is unknown or unconfigured is not an error; the call silently falls
// through to demo mode.
func (g *Generator) Generate(ctx context.Context, requirements, projectType, providerID string) GenerationResult {
	requirements = strings.TrimSpace(requirements)
	projectType = NormalizeProjectType(projectType)

	if providerID == "" {
		providerID = g.registry.Default()
	}

	provider := g.registry.Resolve(providerID)
	if provider == nil {
		return MockResult(requirements, projectType)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := provider.Generate(callCtx, BuildPrompt(requirements, projectType))
	if err != nil {
		log.Error().Err(err).Str("provider", providerID).Msg("provider call failed")
		result := MockResult(requirements, projectType)
		result.Error = fmt.Sprintf("AI provider error: %s", err)
		return result
	}

	result := ParseResponse(raw, providerID)
	if result.Error != "" {
		// Unparseable output counts as a provider failure.
		log.Error().Str("provider", providerID).Msg("unparseable provider response")
		fallback := MockResult(requirements, projectType)
		fallback.Error = result.Error
		return fallback
	}

	normalize(&result)
	return result
}

// normalize enforces the result invariants at the orchestrator boundary:
// sequential unique test ids, Pending status, empty actual results, and a
// summary recomputed from the cases themselves. Provider JSON is not trusted
// to get any of these right.
func normalize(r *GenerationResult) {
	if r.TestCases == nil {
		r.TestCases = []TestCase{}
	}

	var high, medium, low int
	for i := range r.TestCases {
		tc := &r.TestCases[i]
		tc.TestID = fmt.Sprintf("TC_%03d", i+1)
		tc.ActualResult = ""
		if tc.Status == "" {
			tc.Status = "Pending"
		}
		switch tc.Priority {
		case "High":
			high++
		case "Low":
			low++
		default:
			if tc.Priority == "" {
				tc.Priority = "Medium"
			}
			medium++
		}
	}

	r.Summary = Summary{
		TotalTestCases: len(r.TestCases),
		HighPriority:   high,
		MediumPriority: medium,
		LowPriority:    low,
	}
}
