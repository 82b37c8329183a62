// Package testutils provides shared test doubles for the study flows.
package testutils

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/phrazzld/limud/internal/generation"
)

// ScriptedGenerator is a generation.Generator that replays queued results and
// records every prompt it receives. When the script runs out it returns a
// numbered default reply so long flows do not need a step for every call.
type ScriptedGenerator struct {
	mu      sync.Mutex
	steps   []step
	prompts []string
}

type step struct {
	text string
	err  error
}

var _ generation.Generator = (*ScriptedGenerator)(nil)

// NewScriptedGenerator returns an empty script.
func NewScriptedGenerator() *ScriptedGenerator {
	return &ScriptedGenerator{}
}

// Reply queues a successful response.
func (g *ScriptedGenerator) Reply(text string) *ScriptedGenerator {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.steps = append(g.steps, step{text: text})
	return g
}

// Fail queues a failure. The error is wrapped as a *generation.Error the way
// the real gateway reports transport failures.
func (g *ScriptedGenerator) Fail(err error) *ScriptedGenerator {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err == nil {
		err = errors.New("scripted failure")
	}
	g.steps = append(g.steps, step{err: err})
	return g
}

// Generate implements generation.Generator.
func (g *ScriptedGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.prompts = append(g.prompts, prompt)
	if len(g.steps) == 0 {
		return fmt.Sprintf("generated reply %d", len(g.prompts)), nil
	}

	next := g.steps[0]
	g.steps = g.steps[1:]
	if next.err != nil {
		return "", generation.NewError("generate", next.err)
	}
	return next.text, nil
}

// Calls returns how many times Generate was invoked.
func (g *ScriptedGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

// Prompts returns a copy of every prompt received, in order.
func (g *ScriptedGenerator) Prompts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, len(g.prompts))
	copy(out, g.prompts)
	return out
}

// LastPrompt returns the most recent prompt, or "".
func (g *ScriptedGenerator) LastPrompt() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.prompts) == 0 {
		return ""
	}
	return g.prompts[len(g.prompts)-1]
}
