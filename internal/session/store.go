package session

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/phrazzld/limud/internal/generation"
)

// Store keeps sessions in memory and drops them after ttl without use.
type Store struct {
	cache  *cache.Cache
	gen    generation.Generator
	logger *slog.Logger
}

// NewStore creates a Store. Expired sessions are purged every ttl/2.
func NewStore(gen generation.Generator, logger *slog.Logger, ttl time.Duration) (*Store, error) {
	if gen == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if ttl <= 0 {
		return nil, errors.New("session ttl must be positive")
	}

	logger = logger.With("component", "session_store")
	c := cache.New(ttl, ttl/2)
	c.OnEvicted(func(id string, _ interface{}) {
		logger.Info("session discarded", slog.String("session_id", id))
	})

	return &Store{cache: c, gen: gen, logger: logger}, nil
}

// Create starts and stores a new session.
func (s *Store) Create() (*Session, error) {
	sess, err := New(s.gen, s.logger)
	if err != nil {
		return nil, err
	}
	s.cache.Set(sess.ID.String(), sess, cache.DefaultExpiration)
	s.logger.Info("session created", slog.String("session_id", sess.ID.String()))
	return sess, nil
}

// Get returns the session and extends its lifetime.
func (s *Store) Get(id string) (*Session, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	key := parsed.String()

	x, found := s.cache.Get(key)
	if !found {
		return nil, ErrSessionNotFound
	}
	s.cache.Set(key, x, cache.DefaultExpiration)
	return x.(*Session), nil
}

// Delete discards a session.
func (s *Store) Delete(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return ErrSessionNotFound
	}
	if _, found := s.cache.Get(parsed.String()); !found {
		return ErrSessionNotFound
	}
	s.cache.Delete(parsed.String())
	return nil
}

// Count returns how many sessions are live, expired ones included until purged.
func (s *Store) Count() int {
	return s.cache.ItemCount()
}
