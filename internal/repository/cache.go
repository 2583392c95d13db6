package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/cadencehq/cadence-server/internal/domain"
)

// CachedStore wraps a StateStore with an expiring LRU of recently loaded
// snapshots. Save writes through and refreshes the cached entry.
type CachedStore struct {
	inner StateStore
	lru   *expirable.LRU[uuid.UUID, *domain.GameState]
}

// NewCachedStore creates a cache of at most size snapshots with the given
// time-to-live in front of inner.
func NewCachedStore(inner StateStore, size int, ttl time.Duration) *CachedStore {
	return &CachedStore{
		inner: inner,
		lru:   expirable.NewLRU[uuid.UUID, *domain.GameState](size, nil, ttl),
	}
}

// LoadPlayerState serves from the cache when possible, falling back to the
// wrapped store. Cached snapshots are cloned before being handed out.
func (s *CachedStore) LoadPlayerState(ctx context.Context, playerID uuid.UUID) (*domain.GameState, error) {
	if cached, ok := s.lru.Get(playerID); ok {
		return cached.Clone(), nil
	}

	state, err := s.inner.LoadPlayerState(ctx, playerID)
	if err != nil {
		return nil, err
	}
	s.lru.Add(playerID, state.Clone())
	return state, nil
}

// Save writes through to the wrapped store and refreshes the cache entry.
func (s *CachedStore) Save(ctx context.Context, state *domain.GameState) error {
	if err := s.inner.Save(ctx, state); err != nil {
		return err
	}
	s.lru.Add(state.Player.ID, state.Clone())
	return nil
}

// Invalidate drops a player's cached snapshot.
func (s *CachedStore) Invalidate(playerID uuid.UUID) {
	s.lru.Remove(playerID)
}
