package generation

import (
	"context"
)

// Generator turns a fully assembled prompt into generated text.
// This interface serves as the boundary between the study flows and
// external AI/LLM services, following the hexagonal architecture pattern.
type Generator interface {
	// Generate sends prompt to the model and returns its raw text output,
	// unmodified and untruncated. Any failure is returned as an *Error.
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts an ordinary function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f(ctx, prompt).
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
