package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadencehq/cadence-server/internal/domain"
)

func newTestState() *domain.GameState {
	player := domain.NewPlayer("Test Musician", "avatar_1", uuid.New(), time.Now())
	return domain.NewGame(player)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	state := newTestState()

	require.NoError(t, store.Save(ctx, state))

	loaded, err := store.LoadPlayerState(ctx, state.Player.ID)
	require.NoError(t, err)
	assert.Equal(t, state.Player.ID, loaded.Player.ID)
	assert.True(t, loaded.Wallet.Balance.Equal(state.Wallet.Balance))
}

func TestMemoryStoreUnknownPlayer(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.LoadPlayerState(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryStoreIsolatesSnapshots(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	state := newTestState()
	require.NoError(t, store.Save(ctx, state))

	// Mutating the caller's copy must not leak into the store.
	state.Player.Health = 1

	loaded, err := store.LoadPlayerState(ctx, state.Player.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StartingHealth, loaded.Player.Health)
}

func TestCachedStoreServesFromCache(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	cached := NewCachedStore(inner, 8, time.Minute)
	state := newTestState()
	require.NoError(t, cached.Save(ctx, state))

	// Remove from the backing store; the cache must still serve the load.
	delete(inner.states, state.Player.ID)

	loaded, err := cached.LoadPlayerState(ctx, state.Player.ID)
	require.NoError(t, err)
	assert.Equal(t, state.Player.ID, loaded.Player.ID)
}

func TestCachedStoreInvalidate(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	cached := NewCachedStore(inner, 8, time.Minute)
	state := newTestState()
	require.NoError(t, cached.Save(ctx, state))

	delete(inner.states, state.Player.ID)
	cached.Invalidate(state.Player.ID)

	_, err := cached.LoadPlayerState(ctx, state.Player.ID)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestCachedStoreFallsBackToInner(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	state := newTestState()
	require.NoError(t, inner.Save(ctx, state))

	cached := NewCachedStore(inner, 8, time.Minute)
	loaded, err := cached.LoadPlayerState(ctx, state.Player.ID)
	require.NoError(t, err)
	assert.Equal(t, state.Player.ID, loaded.Player.ID)
}
