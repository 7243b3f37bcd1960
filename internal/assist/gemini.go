package assist

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel ...
const DefaultModel = "gemini-2.5-flash"

type gemini struct {
	c     *genai.Client
	model string
}

// NewGemini creates a Model backed by the Gemini API.
func NewGemini(ctx context.Context, apiKey, model string) (Model, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	if model == "" {
		model = DefaultModel
	}

	return gemini{
		c:     c,
		model: model,
	}, nil
}

func (g gemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.c.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return resp.Text(), nil
}
