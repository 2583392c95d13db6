package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/cadencehq/cadence-server/internal/domain"
)

// MemoryStore keeps snapshots in a map. Used in tests and as the default
// store when no database is configured. Snapshots are cloned on both load
// and save so callers never share memory with the store.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[uuid.UUID]*domain.GameState
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[uuid.UUID]*domain.GameState)}
}

// LoadPlayerState returns a clone of the stored snapshot.
func (s *MemoryStore) LoadPlayerState(_ context.Context, playerID uuid.UUID) (*domain.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	return state.Clone(), nil
}

// Save stores a clone of the snapshot keyed by its player id.
func (s *MemoryStore) Save(_ context.Context, state *domain.GameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[state.Player.ID] = state.Clone()
	return nil
}
