// Package repository defines the persistence contract for game state
// snapshots and provides in-memory and cached implementations.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cadencehq/cadence-server/internal/domain"
)

// StateStore persists one GameState snapshot per player.
type StateStore interface {
	LoadPlayerState(ctx context.Context, playerID uuid.UUID) (*domain.GameState, error)
	Save(ctx context.Context, state *domain.GameState) error
}
