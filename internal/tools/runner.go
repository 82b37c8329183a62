package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/limud/internal/generation"
)

// Request carries the fields a tool may read. Which ones are required depends
// on the tool.
type Request struct {
	Topic   string `json:"topic"`
	Passage string `json:"passage"`
	Count   int    `json:"count"`
	First   string `json:"first"`
	Second  string `json:"second"`
}

func (r Request) trimmed() Request {
	r.Topic = strings.TrimSpace(r.Topic)
	r.Passage = strings.TrimSpace(r.Passage)
	r.First = strings.TrimSpace(r.First)
	r.Second = strings.TrimSpace(r.Second)
	return r
}

// Result is the displayable output of one tool run.
type Result struct {
	Tool   ID     `json:"tool"`
	Text   string `json:"text"`
	Failed bool   `json:"failed"`
}

// InputError is a validation failure with a message fit for the user.
type InputError struct {
	Tool    ID
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Tool, e.Message)
}

// Unwrap lets callers match ErrInvalidInput.
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// Runner runs single-shot tools against a Gateway.
type Runner struct {
	gen    generation.Generator
	logger *slog.Logger
}

// NewRunner creates a Runner.
func NewRunner(gen generation.Generator, logger *slog.Logger) (*Runner, error) {
	if gen == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Runner{gen: gen, logger: logger.With("component", "tools")}, nil
}

// Prompt renders the full prompt for a tool without calling the Gateway.
func Prompt(id ID, req Request) (string, error) {
	t, err := lookup(id)
	if err != nil {
		return "", err
	}
	req = req.trimmed()
	if msg := t.validate(req); msg != "" {
		return "", &InputError{Tool: id, Message: msg}
	}

	var body bytes.Buffer
	if err := t.request.Execute(&body, req); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", id, err)
	}
	return persona + "\n" + t.focus + "\n\n" + body.String(), nil
}

// Run validates req, makes one Gateway call and returns the result. A
// generation failure is returned as Failed content with a nil error.
func (r *Runner) Run(ctx context.Context, id ID, req Request) (Result, error) {
	prompt, err := Prompt(id, req)
	if err != nil {
		return Result{}, err
	}

	text, err := r.gen.Generate(ctx, prompt)
	if err != nil {
		r.logger.WarnContext(ctx, "tool generation failed",
			slog.String("tool", string(id)),
			slog.String("error", generation.Describe(err)))
		return Result{Tool: id, Text: generation.Describe(err), Failed: true}, nil
	}

	r.logger.DebugContext(ctx, "tool generated content",
		slog.String("tool", string(id)),
		slog.Int("length", len(text)))
	return Result{Tool: id, Text: text}, nil
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.Join(strings.Fields(a), " "), strings.Join(strings.Fields(b), " "))
}
