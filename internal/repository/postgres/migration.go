package postgres

import (
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS players (
	id BIGSERIAL PRIMARY KEY,
	username TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	games_played INT NOT NULL DEFAULT 0,
	games_won INT NOT NULL DEFAULT 0,
	games_drawn INT NOT NULL DEFAULT 0,
	rating INT NOT NULL DEFAULT 1000,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS games (
	game_id TEXT PRIMARY KEY,
	player_id BIGINT REFERENCES players(id),
	player_name TEXT,
	mode TEXT NOT NULL,
	difficulty TEXT,
	starting_side TEXT NOT NULL,
	winner TEXT,
	total_moves INT NOT NULL,
	duration_seconds INT NOT NULL,
	moves JSONB NOT NULL,
	final_board JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	finished_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_games_player ON games (player_id, finished_at DESC);
`

// RunMigrations applies the embedded schema; statements are idempotent.
func RunMigrations(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %v", err)
	}
	return nil
}
