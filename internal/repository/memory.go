package repository

import (
	"context"
	"sync"
	"time"

	"github.com/jaminalder/tictactoe-time-travel/internal/domain"
)

type memoryEntry struct {
	session *domain.Session
	expires time.Time
}

type memoryGame struct {
	mu    sync.Mutex
	games map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryRepository keeps sessions in process memory. Entries idle for
// longer than ttl are dropped the next time they are read; a zero ttl
// disables expiry.
func NewMemoryRepository(ttl time.Duration) GameRepository {
	return newMemoryRepository(ttl, time.Now)
}

func newMemoryRepository(ttl time.Duration, now func() time.Time) *memoryGame {
	return &memoryGame{
		games: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   now,
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, session *domain.Session) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	e := memoryEntry{session: session.Clone()}
	if that.ttl > 0 {
		e.expires = that.now().Add(that.ttl)
	}
	that.games[session.ID] = e

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*domain.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	e, ok := that.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}

	if !e.expires.IsZero() && !that.now().Before(e.expires) {
		delete(that.games, id)
		return nil, ErrGameNotFound
	}

	return e.session.Clone(), nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(that.games, id)

	return nil
}
