// Package main runs the Limud study server: a JSON API over the guided study
// wizard, the chavruta partner, document questions and the single-shot tools.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/phrazzld/limud/internal/config"
	"github.com/phrazzld/limud/internal/generation"
	"github.com/phrazzld/limud/internal/platform/gemini"
	"github.com/phrazzld/limud/internal/platform/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Printf("limud server failed: %v", err)
		os.Exit(1)
	}
}

// run loads configuration, builds the Gemini generator and serves until a
// shutdown signal. A missing credential or an unusable model client stops
// startup here.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	gen, err := gemini.NewGenerator(ctx, l.With("component", "llm_generator"), cfg.LLM)
	if err != nil {
		l.Error("failed to initialize LLM generator", "error", generation.Describe(err))
		return fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	l.Info("LLM generator initialized", "model", gen.Model())

	app, err := newApplication(cfg, l, gen)
	if err != nil {
		return err
	}
	return app.startHTTPServer(ctx, app.setupRouter())
}

func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"session_ttl_minutes", cfg.Session.TTLMinutes)
	return cfg, nil
}
