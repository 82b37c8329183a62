package session_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/phrazzld/limud/internal/document"
	"github.com/phrazzld/limud/internal/platform/logger"
	"github.com/phrazzld/limud/internal/session"
	"github.com/phrazzld/limud/internal/testutils"
	"github.com/phrazzld/limud/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, ttl time.Duration) *session.Store {
	t.Helper()
	l, _ := logger.NewTestLogger()
	store, err := session.NewStore(testutils.NewScriptedGenerator(), l, ttl)
	require.NoError(t, err)
	return store
}

func TestNewSessionInitialState(t *testing.T) {
	l, _ := logger.NewTestLogger()
	s, err := session.New(testutils.NewScriptedGenerator(), l)
	require.NoError(t, err)

	assert.Equal(t, wizard.State{Kind: wizard.KindUnset, Topic: "", Stage: 0}, s.Wizard.State())
	assert.False(t, s.Chavruta.Active())
	assert.Empty(t, s.Chavruta.View().Turns)
	assert.Nil(t, s.Document())
	assert.Empty(t, s.Answers())
	assert.False(t, s.CreatedAt.IsZero())
}

func TestAcquireRejectsConcurrentAction(t *testing.T) {
	l, _ := logger.NewTestLogger()
	s, err := session.New(testutils.NewScriptedGenerator(), l)
	require.NoError(t, err)

	require.NoError(t, s.Acquire())
	assert.ErrorIs(t, s.Acquire(), session.ErrBusy)
	s.Release()
	require.NoError(t, s.Acquire())
	s.Release()
}

func TestAcquireUnderContention(t *testing.T) {
	l, _ := logger.NewTestLogger()
	s, err := session.New(testutils.NewScriptedGenerator(), l)
	require.NoError(t, err)
	require.NoError(t, s.Acquire())

	var busy atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Acquire(); err != nil {
				busy.Add(1)
				return
			}
			s.Release()
		}()
	}
	wg.Wait()
	s.Release()

	assert.Equal(t, int32(20), busy.Load())
}

func TestSetDocumentClearsAnswers(t *testing.T) {
	l, _ := logger.NewTestLogger()
	s, err := session.New(testutils.NewScriptedGenerator(), l)
	require.NoError(t, err)

	s.SetDocument(&document.UploadedDocument{SourceName: "a.pdf"})
	s.AddAnswer(document.Answer{Question: "q", Text: "a"})
	assert.Len(t, s.Answers(), 1)

	s.SetDocument(&document.UploadedDocument{SourceName: "b.pdf"})
	assert.Equal(t, "b.pdf", s.Document().SourceName)
	assert.Empty(t, s.Answers())
}

func TestStoreLifecycle(t *testing.T) {
	store := newStore(t, time.Hour)

	s, err := store.Create()
	require.NoError(t, err)
	assert.Equal(t, 1, store.Count())

	got, err := store.Get(s.ID.String())
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, store.Delete(s.ID.String()))
	_, err = store.Get(s.ID.String())
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(s.ID.String()), session.ErrSessionNotFound)
}

func TestStoreUnknownIDs(t *testing.T) {
	store := newStore(t, time.Hour)

	for _, id := range []string{"", "not-a-uuid", "6f1c2b8e-0d53-4a4e-9a3b-1f2e3d4c5b6a"} {
		_, err := store.Get(id)
		assert.ErrorIs(t, err, session.ErrSessionNotFound, id)
	}
}

func TestStoreExpiresIdleSessions(t *testing.T) {
	store := newStore(t, 50*time.Millisecond)

	s, err := store.Create()
	require.NoError(t, err)

	time.Sleep(150 * time.Millisecond)
	_, err = store.Get(s.ID.String())
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestNewStoreValidation(t *testing.T) {
	l, _ := logger.NewTestLogger()
	gen := testutils.NewScriptedGenerator()

	_, err := session.NewStore(nil, l, time.Minute)
	assert.Error(t, err)
	_, err = session.NewStore(gen, nil, time.Minute)
	assert.Error(t, err)
	_, err = session.NewStore(gen, l, 0)
	assert.Error(t, err)
}
