package ai

import "context"

// Provider is an abstraction for different LLM API providers. Each
// implementation handles provider-specific HTTP details, authentication,
// request/response formatting, and error handling.
type Provider interface {
	// Generate submits the prompt and returns the model's raw text output.
	Generate(ctx context.Context, prompt string) (string, error)
}
