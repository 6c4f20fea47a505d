// Package gemini provides a Google Gemini client for generating pet care
// recommendations.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"petverse_backend/internal/feature/petcare/usecase"
)

const (
	// DefaultModel is the default Gemini model.
	DefaultModel = "gemini-2.5-flash"
)

// GeminiAdvisor generates care recommendations with the Gemini API.
type GeminiAdvisor struct {
	client *genai.Client
	model  string
}

var _ usecase.CareAdvisor = (*GeminiAdvisor)(nil)

// NewGeminiAdvisor creates a GeminiAdvisor using ADC credentials. The
// environment variables GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT
// and GOOGLE_CLOUD_LOCATION select the backend.
func NewGeminiAdvisor(ctx context.Context) (*GeminiAdvisor, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiAdvisor{client: client, model: DefaultModel}, nil
}

// Advise generates a recommendation from the prompt.
func (g *GeminiAdvisor) Advise(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	return resp.Text(), nil
}
