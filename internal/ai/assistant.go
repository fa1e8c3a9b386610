package ai

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// Unavailable is the fixed reply substituted whenever the model call fails.
const Unavailable = "⚠️ Error: La IA no está disponible en este momento."

// Assistant is the non-failing surface over a Generator: model errors are
// logged and replaced with the Unavailable placeholder, never propagated.
type Assistant struct {
	gen Generator
	log zerolog.Logger
}

// NewAssistant wraps a Generator.
func NewAssistant(gen Generator, log zerolog.Logger) *Assistant {
	return &Assistant{gen: gen, log: log}
}

// Ask submits the prompt and returns the trimmed model output, or the
// Unavailable placeholder on any error.
func (a *Assistant) Ask(ctx context.Context, prompt string) string {
	out, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		a.log.Error().Err(err).Msg("fallo en API Vertex AI")
		return Unavailable
	}
	return strings.TrimSpace(out)
}
