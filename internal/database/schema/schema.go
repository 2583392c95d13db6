package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Game state snapshots, one row per player. The engine owns all invariants;
-- the database only stores the latest consistent snapshot as jsonb.
CREATE TABLE IF NOT EXISTS game_states (
    player_id UUID PRIMARY KEY,
    snapshot JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_game_states_updated_at ON game_states (updated_at);
`
