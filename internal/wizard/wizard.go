package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/limud/internal/generation"
)

// Kind is the type of topic the wizard is studying.
type Kind string

const (
	// KindUnset means no topic has been chosen
	KindUnset Kind = ""
	// KindReading is a weekly Torah reading, e.g. "Noach"
	KindReading Kind = "reading"
	// KindTheme is a general theme, e.g. "Teshuvah"
	KindTheme Kind = "theme"
)

// ParseKind converts user input into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindReading:
		return KindReading, nil
	case KindTheme:
		return KindTheme, nil
	default:
		return KindUnset, fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// Phase is the coarse state of the wizard.
type Phase string

const (
	PhaseCollecting Phase = "collecting"
	PhaseInStage    Phase = "in_stage"
	PhaseTerminal   Phase = "terminal"
)

// State is the wizard's mutable core. Topic is non-empty whenever Stage > 0.
type State struct {
	Kind  Kind   `json:"kind"`
	Topic string `json:"topic"`
	Stage int    `json:"stage"`
}

// StageContent is the produced content of one stage visit.
type StageContent struct {
	Stage  int    `json:"stage"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	Failed bool   `json:"failed"`
}

// Snapshot is what the interface renders after any action.
type Snapshot struct {
	State      State          `json:"state"`
	Phase      Phase          `json:"phase"`
	StageCount int            `json:"stage_count"`
	Current    *StageContent  `json:"current,omitempty"`
	Completed  []StageContent `json:"completed"`
	CanAdvance bool           `json:"can_advance"`
}

// Wizard is a single session's guided study flow. It is not safe for
// concurrent use; the owning session serializes actions.
type Wizard struct {
	gen    generation.Generator
	logger *slog.Logger

	state     State
	current   *StageContent
	completed []StageContent
}

// New creates a wizard in the collecting phase.
func New(gen generation.Generator, logger *slog.Logger) (*Wizard, error) {
	if gen == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Wizard{
		gen:    gen,
		logger: logger.With("component", "wizard"),
	}, nil
}

// State returns a copy of the current state.
func (w *Wizard) State() State {
	return w.state
}

// Phase derives the coarse phase from the state and the current content.
func (w *Wizard) Phase() Phase {
	switch {
	case w.state.Stage == 0:
		return PhaseCollecting
	case w.state.Stage == StageCount(w.state.Kind) && w.current != nil && !w.current.Failed:
		return PhaseTerminal
	default:
		return PhaseInStage
	}
}

// Start leaves the collecting phase for stage 1 of kind about topic.
func (w *Wizard) Start(kind Kind, topic string) error {
	if w.Phase() != PhaseCollecting {
		return ErrAlreadyStarted
	}
	if StageCount(kind) == 0 {
		return ErrInvalidKind
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return ErrEmptyTopic
	}

	w.state = State{Kind: kind, Topic: topic, Stage: 1}
	w.current = nil
	w.completed = nil

	w.logger.Info("wizard started",
		"kind", kind,
		"topic", topic,
		"stage_count", StageCount(kind))
	return nil
}

// Advance moves to the next stage. It requires the current stage to have been
// produced successfully and the wizard not to be terminal.
func (w *Wizard) Advance() error {
	switch w.Phase() {
	case PhaseCollecting:
		return ErrNotStarted
	case PhaseTerminal:
		return ErrFinished
	}
	if w.current == nil {
		return ErrContentPending
	}
	if w.current.Failed {
		return ErrStageFailed
	}

	w.completed = append(w.completed, *w.current)
	w.current = nil
	w.state.Stage++

	w.logger.Info("wizard advanced", "stage", w.state.Stage)
	return nil
}

// Reset returns to the collecting phase and discards all produced content.
func (w *Wizard) Reset() {
	w.state = State{}
	w.current = nil
	w.completed = nil
	w.logger.Info("wizard reset")
}

// View produces the current stage's content if this stage visit has none yet,
// then returns a snapshot. Repeated calls on the same stage never call the
// generator again, including after a failure.
func (w *Wizard) View(ctx context.Context) Snapshot {
	if w.state.Stage > 0 && w.current == nil {
		w.produce(ctx)
	}
	return w.snapshot()
}

func (w *Wizard) produce(ctx context.Context) {
	n := w.state.Stage
	title := stageTables[w.state.Kind][n-1].title
	content := &StageContent{Stage: n, Title: title}

	p, err := prompt(w.state.Kind, n, w.state.Topic)
	if err == nil {
		var text string
		text, err = w.gen.Generate(ctx, p)
		content.Text = text
	}
	if err != nil {
		w.logger.ErrorContext(ctx, "wizard stage generation failed",
			"stage", n,
			"kind", w.state.Kind,
			"error", err)
		content.Text = generation.Describe(err)
		content.Failed = true
	} else {
		w.logger.InfoContext(ctx, "wizard stage produced",
			"stage", n,
			"kind", w.state.Kind,
			"content_length", len(content.Text))
	}

	w.current = content
}

func (w *Wizard) snapshot() Snapshot {
	snap := Snapshot{
		State:      w.state,
		Phase:      w.Phase(),
		StageCount: StageCount(w.state.Kind),
		Completed:  append([]StageContent(nil), w.completed...),
	}
	if w.current != nil {
		c := *w.current
		snap.Current = &c
	}
	snap.CanAdvance = snap.Phase == PhaseInStage && w.current != nil && !w.current.Failed
	if snap.Completed == nil {
		snap.Completed = []StageContent{}
	}
	return snap
}
