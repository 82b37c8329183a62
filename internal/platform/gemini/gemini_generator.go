package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/limud/internal/config"
	"github.com/phrazzld/limud/internal/generation"
	"google.golang.org/genai"
)

// contentGenerator is the slice of the genai client this package uses.
// *genai.Client's Models field satisfies it.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Generator implements the generation.Generator interface using
// Google's Gemini API.
type Generator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// models issues the GenerateContent calls
	models contentGenerator

	// model is the name of the Gemini model every call is bound to
	model string

	// temperature is sent with every request
	temperature float32
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator validates cfg, constructs a Gemini client and binds it to the
// configured model. Any failure wraps generation.ErrInvalidConfig.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	logger.InfoContext(ctx, "Gemini generator initialized",
		"model", cfg.ModelName,
		"temperature", cfg.Temperature)

	return newGenerator(logger, client.Models, cfg), nil
}

// newGenerator wires a Generator around an existing content generator.
func newGenerator(logger *slog.Logger, models contentGenerator, cfg config.LLMConfig) *Generator {
	return &Generator{
		logger:      logger,
		models:      models,
		model:       cfg.ModelName,
		temperature: float32(cfg.Temperature),
	}
}

// Model returns the model name every request is bound to.
func (g *Generator) Model() string {
	return g.model
}

// Generate sends prompt to Gemini in a single call and returns the text of the
// first candidate unmodified.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.models == nil {
		return "", generation.NewError("generate", generation.ErrClientUnavailable)
	}
	if strings.TrimSpace(prompt) == "" {
		return "", generation.NewError("generate", generation.ErrEmptyPrompt)
	}

	g.logger.DebugContext(ctx, "Making Gemini API call",
		"model", g.model,
		"prompt_length", len(prompt))

	temperature := g.temperature
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: &temperature,
	})
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"model", g.model,
			"error", err)
		return "", generation.NewError("generate", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err))
	}

	text, err := extractText(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Gemini API returned unusable response",
			"model", g.model,
			"error", err)
		return "", generation.NewError("generate", err)
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"model", g.model,
		"response_length", len(text))

	return text, nil
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: finish reason %s", generation.ErrContentBlocked, candidate.FinishReason)
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil {
			continue
		}
		sb.WriteString(part.Text)
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: response contained no text", generation.ErrInvalidResponse)
	}

	return sb.String(), nil
}
