package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/limud/internal/api"
	"github.com/phrazzld/limud/internal/config"
	"github.com/phrazzld/limud/internal/document"
	"github.com/phrazzld/limud/internal/generation"
	"github.com/phrazzld/limud/internal/session"
	"github.com/phrazzld/limud/internal/tools"
)

// application holds the shared dependencies of the server.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	generator generation.Generator
	sessions  *session.Store
	handler   *api.Handler
}

// newApplication wires the session store, the flows and the HTTP handler
// around one generator.
func newApplication(cfg *config.Config, logger *slog.Logger, gen generation.Generator) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if gen == nil {
		return nil, errors.New("generator cannot be nil")
	}

	ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	sessions, err := session.NewStore(gen, logger, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}

	runner, err := tools.NewRunner(gen, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create tool runner: %w", err)
	}

	answerer, err := document.NewAnswerer(gen, logger, cfg.Document.MaxPromptChars)
	if err != nil {
		return nil, fmt.Errorf("failed to create document answerer: %w", err)
	}

	handler, err := api.NewHandler(sessions, runner, answerer, cfg.Document.MaxUploadBytes, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create API handler: %w", err)
	}

	logger.Info("application initialized",
		"session_ttl", ttl.String(),
		"max_upload_bytes", cfg.Document.MaxUploadBytes)

	return &application{
		config:    cfg,
		logger:    logger,
		generator: gen,
		sessions:  sessions,
		handler:   handler,
	}, nil
}
