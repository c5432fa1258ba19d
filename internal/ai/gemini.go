package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const geminiURLFormat = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

// geminiProvider implements Provider against the Gemini generateContent API.
type geminiProvider struct {
	apiKey string
	model  string
	client *http.Client
}

func newGemini(apiKey, model string) *geminiProvider {
	return &geminiProvider{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{},
	}
}

func (gp *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	body, _ := json.Marshal(map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	})

	url := fmt.Sprintf(geminiURLFormat, gp.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", gp.apiKey)

	resp, err := gp.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	var gr struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &gr); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	if gr.Error != nil {
		return "", fmt.Errorf("gemini: %s", gr.Error.Message)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response")
	}

	return gr.Candidates[0].Content.Parts[0].Text, nil
}
