package session

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/limud/internal/chavruta"
	"github.com/phrazzld/limud/internal/document"
	"github.com/phrazzld/limud/internal/generation"
	"github.com/phrazzld/limud/internal/wizard"
)

var (
	// ErrBusy is returned when an action is already running on the session
	ErrBusy = errors.New("session is busy")

	// ErrSessionNotFound is returned for unknown or expired session IDs
	ErrSessionNotFound = errors.New("session not found")
)

// Session is the state of one user's visit.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	Wizard   *wizard.Wizard
	Chavruta *chavruta.Session

	busy     sync.Mutex
	document *document.UploadedDocument
	answers  []document.Answer
}

// New creates a session with an unset wizard, an idle chavruta and no document.
func New(gen generation.Generator, logger *slog.Logger) (*Session, error) {
	if gen == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	id := uuid.New()
	logger = logger.With("session_id", id.String())

	w, err := wizard.New(gen, logger)
	if err != nil {
		return nil, err
	}
	c, err := chavruta.New(gen, logger)
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		Wizard:    w,
		Chavruta:  c,
	}, nil
}

// Acquire claims the session for one action. It never blocks.
func (s *Session) Acquire() error {
	if !s.busy.TryLock() {
		return ErrBusy
	}
	return nil
}

// Release ends the action started by Acquire.
func (s *Session) Release() {
	s.busy.Unlock()
}

// Document returns the current upload, or nil.
func (s *Session) Document() *document.UploadedDocument {
	return s.document
}

// SetDocument replaces the current upload and forgets answers about the old one.
func (s *Session) SetDocument(doc *document.UploadedDocument) {
	s.document = doc
	s.answers = nil
}

// AddAnswer records an answer about the current document.
func (s *Session) AddAnswer(a document.Answer) {
	s.answers = append(s.answers, a)
}

// Answers returns the answers recorded for the current document, oldest first.
func (s *Session) Answers() []document.Answer {
	out := make([]document.Answer, len(s.answers))
	copy(out, s.answers)
	return out
}
