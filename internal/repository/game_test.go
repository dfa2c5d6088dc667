package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaminalder/tictactoe-time-travel/testing/suite"
)

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage, time.Hour)

	// Given: a session with one move
	session := sessionWithMove("123")

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, session)

	// Then: no error is returned and the key carries the ttl
	require.NoError(t, err)
	ttl, err := st.Storage.TTL(ctx, "game:123").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour)

		// Given: a stored session
		session := sessionWithMove("123")
		session.Game.ToggleOrder()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, session))

		// When: GetByID is called with its ID
		got, err := gameRepo.GetByID(ctx, session.ID)

		// Then: history, pointer and order round-trip, including the absent first move
		require.NoError(t, err)
		assert.Equal(t, session.ID, got.ID)
		assert.Equal(t, session.Game, got.Game)
		assert.Nil(t, got.Game.History[0].LastMove)
		assert.WithinDuration(t, session.Created, got.Created, time.Millisecond)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour)

		// When: GetByID is called with an unknown ID
		got, err := gameRepo.GetByID(ctx, "9999999")

		// Then: ErrGameNotFound is returned
		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Nil(t, got)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, sessionWithMove("123")))

		// When: DeleteByID is called with an existing ID
		err := gameRepo.DeleteByID(ctx, "123")

		// Then: the session is gone
		require.NoError(t, err)
		_, err = gameRepo.GetByID(ctx, "123")
		require.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour)

		err := gameRepo.DeleteByID(ctx, "9999999")

		require.ErrorIs(t, err, ErrGameNotFound)
	})
}
