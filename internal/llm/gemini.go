package llm

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"
)

// samplingTemperature is fixed; generation is not tunable per request.
const samplingTemperature float32 = 0.3

type GeminiConfig struct {
	APIKey string
	Model  string

	// BaseURL overrides the Gemini API base URL. Useful for proxies/testing.
	BaseURL string
}

type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig) (*GeminiGenerator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("GOOGLE_API_KEY not set")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, errors.New("missing Gemini model")
	}

	cc := &genai.ClientConfig{
		APIKey:  strings.TrimSpace(cfg.APIKey),
		Backend: genai.BackendGeminiAPI,
	}
	if strings.TrimSpace(cfg.BaseURL) != "" {
		cc.HTTPOptions.BaseURL = strings.TrimSpace(cfg.BaseURL)
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	return &GeminiGenerator{client: client, model: strings.TrimSpace(cfg.Model)}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	temperature := samplingTemperature
	resp, err := g.client.Models.GenerateContent(
		ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:    &temperature,
			CandidateCount: 1,
		},
	)
	if err != nil {
		return "", err
	}
	return normalizeResponse(resp)
}

// normalizeResponse flattens the provider's candidate structure into a single
// trimmed string so callers never inspect raw provider shapes.
func normalizeResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", errors.New("model returned no response")
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("model response was empty")
	}
	return text, nil
}
