package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/limud/internal/config"
	"github.com/phrazzld/limud/internal/generation"
)

// validateConfig checks that the credential and model are usable before a
// client is constructed.
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		logger.ErrorContext(ctx, "Missing Gemini API key",
			"error", "GeminiAPIKey is empty")
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if strings.TrimSpace(cfg.ModelName) == "" {
		logger.ErrorContext(ctx, "Missing model name",
			"error", "ModelName is empty")
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return fmt.Errorf("%w: temperature %.2f outside [0, 2]", generation.ErrInvalidConfig, cfg.Temperature)
	}

	return nil
}
