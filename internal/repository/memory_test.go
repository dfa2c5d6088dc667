package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaminalder/tictactoe-time-travel/internal/domain"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func sessionWithMove(id string) *domain.Session {
	s := domain.NewSession(id, time.Now())
	s.Game.Play(domain.Board{domain.X}, 0)
	return s
}

func TestMemoryRepository_CreateOrUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(time.Hour)

	// Given: a session with one move
	session := sessionWithMove("123")

	// When: it is stored and read back
	require.NoError(t, repo.CreateOrUpdate(ctx, session))
	got, err := repo.GetByID(ctx, "123")

	// Then: the game round-trips
	require.NoError(t, err)
	assert.Equal(t, session.Game, got.Game)

	// And: mutating the stored copy does not leak into the repository
	got.Game.ToggleOrder()
	again, err := repo.GetByID(ctx, "123")
	require.NoError(t, err)
	assert.False(t, again.Game.Descending)
}

func TestMemoryRepository_GetByID(t *testing.T) {
	t.Run("GetByID_NotFound", func(t *testing.T) {
		repo := NewMemoryRepository(time.Hour)

		got, err := repo.GetByID(context.Background(), "9999999")

		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Nil(t, got)
	})

	t.Run("GetByID_Expired", func(t *testing.T) {
		// Given: a stored session and a clock past its ttl
		clock := &fakeClock{t: time.Now()}
		repo := newMemoryRepository(time.Minute, clock.now)
		require.NoError(t, repo.CreateOrUpdate(context.Background(), sessionWithMove("123")))
		clock.t = clock.t.Add(time.Minute)

		// When: reading it
		_, err := repo.GetByID(context.Background(), "123")

		// Then: it is gone
		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Empty(t, repo.games)
	})

	t.Run("GetByID_WriteRefreshesExpiry", func(t *testing.T) {
		clock := &fakeClock{t: time.Now()}
		repo := newMemoryRepository(time.Minute, clock.now)
		session := sessionWithMove("123")
		require.NoError(t, repo.CreateOrUpdate(context.Background(), session))

		clock.t = clock.t.Add(50 * time.Second)
		require.NoError(t, repo.CreateOrUpdate(context.Background(), session))
		clock.t = clock.t.Add(50 * time.Second)

		_, err := repo.GetByID(context.Background(), "123")
		require.NoError(t, err)
	})

	t.Run("GetByID_NoTTL", func(t *testing.T) {
		clock := &fakeClock{t: time.Now()}
		repo := newMemoryRepository(0, clock.now)
		require.NoError(t, repo.CreateOrUpdate(context.Background(), sessionWithMove("123")))
		clock.t = clock.t.Add(24 * time.Hour)

		_, err := repo.GetByID(context.Background(), "123")
		require.NoError(t, err)
	})
}

func TestMemoryRepository_DeleteByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(time.Hour)
	require.NoError(t, repo.CreateOrUpdate(ctx, sessionWithMove("123")))

	require.NoError(t, repo.DeleteByID(ctx, "123"))

	_, err := repo.GetByID(ctx, "123")
	require.ErrorIs(t, err, ErrGameNotFound)
	require.ErrorIs(t, repo.DeleteByID(ctx, "123"), ErrGameNotFound)
}
