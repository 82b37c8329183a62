package chavruta

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/limud/internal/generation"
)

// Register is the linguistic style of the persona's speech.
type Register string

const (
	RegisterUnset       Register = ""
	RegisterModern      Register = "modern"
	RegisterTraditional Register = "traditional"
)

// ParseRegister converts user input into a Register.
func ParseRegister(s string) (Register, error) {
	switch Register(strings.ToLower(strings.TrimSpace(s))) {
	case RegisterModern:
		return RegisterModern, nil
	case RegisterTraditional:
		return RegisterTraditional, nil
	default:
		return RegisterUnset, fmt.Errorf("%w: %q", ErrInvalidRegister, s)
	}
}

// Speaker identifies who produced a turn.
type Speaker string

const (
	SpeakerUser    Speaker = "user"
	SpeakerPersona Speaker = "persona"
)

// Turn is one labeled utterance in the transcript.
type Turn struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// exitWords end the session without a model call. Matching is on the
// trimmed, lower-cased message.
var exitWords = map[string]struct{}{
	"exit":    {},
	"quit":    {},
	"end":     {},
	"bye":     {},
	"goodbye": {},
}

// IsExitWord reports whether message, trimmed and lower-cased, is an exit word.
func IsExitWord(message string) bool {
	_, ok := exitWords[strings.ToLower(strings.TrimSpace(message))]
	return ok
}

// View is the renderable state of a session.
type View struct {
	Active   bool     `json:"active"`
	Persona  string   `json:"persona"`
	Topic    string   `json:"topic"`
	Register Register `json:"register"`
	Turns    []Turn   `json:"turns"`
}

// Reply is the outcome of Send.
type Reply struct {
	// Turn is the persona's new turn; nil when the session ended.
	Turn *Turn `json:"turn,omitempty"`
	// Ended is true when the message was an exit word.
	Ended bool `json:"ended"`
	// Farewell is the closing line when Ended is true.
	Farewell string `json:"farewell,omitempty"`
}

// Session is one student's study-partner conversation. While inactive it has
// no turns; while active its turns start with the persona and alternate.
// It is not safe for concurrent use; the owning session serializes actions.
type Session struct {
	gen    generation.Generator
	logger *slog.Logger

	persona     string
	topic       string
	register    Register
	instruction string
	turns       []Turn
	active      bool
}

// New creates an idle session.
func New(gen generation.Generator, logger *slog.Logger) (*Session, error) {
	if gen == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Session{
		gen:    gen,
		logger: logger.With("component", "chavruta"),
	}, nil
}

// Active reports whether a conversation is in progress.
func (s *Session) Active() bool {
	return s.active
}

// View returns a copy of the renderable state.
func (s *Session) View() View {
	turns := make([]Turn, len(s.turns))
	copy(turns, s.turns)
	return View{
		Active:   s.active,
		Persona:  s.persona,
		Topic:    s.topic,
		Register: s.register,
		Turns:    turns,
	}
}

// Start opens a conversation with persona about topic. One model call produces
// the opening turn; if it fails the session stays idle.
func (s *Session) Start(ctx context.Context, persona, topic string, register Register) (Turn, error) {
	if s.active {
		return Turn{}, ErrAlreadyActive
	}
	persona = strings.TrimSpace(persona)
	topic = strings.TrimSpace(topic)
	if persona == "" || topic == "" || register == RegisterUnset {
		return Turn{}, ErrMissingSetup
	}
	if _, ok := styleDirectives[register]; !ok {
		return Turn{}, ErrInvalidRegister
	}

	instruction, err := buildInstruction(persona, topic, register)
	if err != nil {
		return Turn{}, err
	}

	text, err := s.gen.Generate(ctx, openingPrompt(instruction, persona, topic))
	if err != nil {
		s.logger.ErrorContext(ctx, "chavruta opening failed",
			"persona", persona,
			"error", err)
		return Turn{}, fmt.Errorf("opening turn: %w", err)
	}

	opening := Turn{Speaker: SpeakerPersona, Text: text}
	s.persona = persona
	s.topic = topic
	s.register = register
	s.instruction = instruction
	s.turns = []Turn{opening}
	s.active = true

	s.logger.InfoContext(ctx, "chavruta started",
		"persona", persona,
		"topic", topic,
		"register", register)
	return opening, nil
}

// Send delivers the student's message. Exit words end the session without a
// model call. On generation failure the student's turn is removed again and
// the session stays active.
func (s *Session) Send(ctx context.Context, message string) (Reply, error) {
	if !s.active {
		return Reply{}, ErrNotActive
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{}, ErrEmptyMessage
	}

	if IsExitWord(message) {
		line, err := s.End()
		if err != nil {
			return Reply{}, err
		}
		return Reply{Ended: true, Farewell: line}, nil
	}

	s.turns = append(s.turns, Turn{Speaker: SpeakerUser, Text: message})

	text, err := s.gen.Generate(ctx, turnPrompt(s.instruction, s.persona, s.turns))
	if err != nil {
		s.turns = s.turns[:len(s.turns)-1]
		s.logger.ErrorContext(ctx, "chavruta reply failed, user turn rolled back",
			"persona", s.persona,
			"turn_count", len(s.turns),
			"error", err)
		return Reply{}, fmt.Errorf("persona reply: %w", err)
	}

	reply := Turn{Speaker: SpeakerPersona, Text: text}
	s.turns = append(s.turns, reply)

	s.logger.DebugContext(ctx, "chavruta turn completed",
		"persona", s.persona,
		"turn_count", len(s.turns))
	return Reply{Turn: &reply}, nil
}

// End closes the conversation, clears all setup fields and returns the
// farewell line spoken by the persona that was active.
func (s *Session) End() (string, error) {
	if !s.active {
		return "", ErrNotActive
	}
	persona := s.persona
	turnCount := len(s.turns)

	s.persona = ""
	s.topic = ""
	s.register = RegisterUnset
	s.instruction = ""
	s.turns = nil
	s.active = false

	s.logger.Info("chavruta ended",
		"persona", persona,
		"turn_count", turnCount)
	return farewell(persona), nil
}
