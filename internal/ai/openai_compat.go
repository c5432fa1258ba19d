package ai

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Base URLs of the OpenAI-compatible providers.
const (
	openRouterBaseURL = "https://openrouter.ai/api/v1"
	groqBaseURL       = "https://api.groq.com/openai/v1"
	togetherBaseURL   = "https://api.together.xyz/v1"
)

// openAICompatProvider serves every provider speaking the OpenAI chat
// completions dialect (OpenRouter, Groq, Together) through the official SDK
// pointed at the provider's base URL.
type openAICompatProvider struct {
	model string
	opts  []option.RequestOption
}

func newOpenAICompat(apiKey, baseURL, model string) *openAICompatProvider {
	return &openAICompatProvider{
		model: model,
		opts: []option.RequestOption{
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
		},
	}
}

func (p *openAICompatProvider) Generate(ctx context.Context, prompt string) (string, error) {
	client := openai.NewClient(p.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
