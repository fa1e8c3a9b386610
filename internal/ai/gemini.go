// Package ai wraps the Gemini model behind a small assistant interface
// that never fails from the caller's point of view.
package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const modelName = "gemini-2.5-flash"

// Generator produces text for a prompt. It may fail; callers that need a
// non-failing surface use Assistant.Ask.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Gemini implements Generator against Vertex AI.
type Gemini struct {
	client *genai.Client
}

// NewGemini creates a Vertex AI client for the given project and location.
func NewGemini(ctx context.Context, project, location string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  project,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing Vertex AI client: %w", err)
	}
	return &Gemini{client: client}, nil
}

// Generate submits the prompt to the model and returns its text output.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}
	return resp.Text(), nil
}
