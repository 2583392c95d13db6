// Package postgres implements the snapshot store against PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cadencehq/cadence-server/internal/domain"
)

// StateRepository persists GameState snapshots as jsonb, one row per player.
type StateRepository struct {
	db *pgxpool.Pool
}

// NewStateRepository creates a new StateRepository.
func NewStateRepository(db *pgxpool.Pool) *StateRepository {
	return &StateRepository{db: db}
}

// LoadPlayerState fetches and decodes the player's snapshot.
func (r *StateRepository) LoadPlayerState(ctx context.Context, playerID uuid.UUID) (*domain.GameState, error) {
	var raw []byte
	query := `SELECT snapshot FROM game_states WHERE player_id = $1`
	if err := r.db.QueryRow(ctx, query, playerID).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
		}
		return nil, fmt.Errorf("failed to load game state: %w", err)
	}

	var state domain.GameState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to decode game state: %w", err)
	}
	return &state, nil
}

// Save upserts the player's snapshot.
func (r *StateRepository) Save(ctx context.Context, state *domain.GameState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode game state: %w", err)
	}

	query := `
		INSERT INTO game_states (player_id, snapshot, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (player_id) DO UPDATE
		SET snapshot = EXCLUDED.snapshot, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, state.Player.ID, raw); err != nil {
		return fmt.Errorf("failed to save game state: %w", err)
	}
	return nil
}
