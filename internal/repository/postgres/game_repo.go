package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Kennethenow1/Connect-Four-Game/internal/domain"
)

type GameRepo struct {
	DB *sql.DB
}

func NewGameRepo(db *sql.DB) *GameRepo {
	return &GameRepo{DB: db}
}

// GameResult is a stored finished game.
type GameResult struct {
	GameID          string            `json:"id"`
	PlayerID        *int64            `json:"playerId,omitempty"`
	PlayerName      string            `json:"playerName,omitempty"`
	Mode            domain.Mode       `json:"mode"`
	Difficulty      domain.Difficulty `json:"difficulty,omitempty"`
	StartingSide    string            `json:"startingSide"`
	Winner          string            `json:"winner,omitempty"`
	TotalMoves      int               `json:"totalMoves"`
	DurationSeconds int               `json:"durationSeconds"`
	Moves           []domain.Move     `json:"moves,omitempty"`
	FinalBoard      [][]domain.Side   `json:"finalBoard,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	FinishedAt      time.Time         `json:"finishedAt"`
}

// SaveRecord stores a finalized game and, for attributed human-vs-AI
// games, updates the player's stats and rating transactionally.
func (r *GameRepo) SaveRecord(ctx context.Context, record *domain.Record) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	movesJSON, err := json.Marshal(record.Moves)
	if err != nil {
		return fmt.Errorf("failed to marshal move log: %v", err)
	}
	boardJSON, err := json.Marshal(record.FinalBoard)
	if err != nil {
		return fmt.Errorf("failed to marshal final board: %v", err)
	}

	var winner interface{}
	if record.Winner != nil {
		winner = record.Winner.String()
	}
	var playerName interface{}
	if record.PlayerName != "" {
		playerName = record.PlayerName
	}

	query := `
	INSERT INTO games (game_id, player_id, player_name, mode, difficulty, starting_side, winner, total_moves, duration_seconds, moves, final_board, created_at, finished_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (game_id) DO UPDATE SET
		winner = EXCLUDED.winner,
		total_moves = EXCLUDED.total_moves,
		duration_seconds = EXCLUDED.duration_seconds,
		moves = EXCLUDED.moves,
		final_board = EXCLUDED.final_board,
		finished_at = EXCLUDED.finished_at;
	`
	_, err = tx.ExecContext(ctx, query,
		record.ID, record.PlayerID, playerName, string(record.Mode), string(record.Difficulty),
		record.StartingSide.String(), winner, record.TotalMoves(), record.DurationSeconds(),
		movesJSON, boardJSON, record.StartedAt, record.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert game record: %v", err)
	}

	if record.PlayerID != nil && record.Mode == domain.ModeHumanVsAI {
		if err := r.updatePlayerStatsTx(ctx, tx, *record.PlayerID, record); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}
	return nil
}

// updatePlayerStatsTx bumps the player's counters and Elo rating. The
// human always holds Red in human-vs-AI games.
func (r *GameRepo) updatePlayerStatsTx(ctx context.Context, tx *sql.Tx, playerID int64, record *domain.Record) error {
	var rating int
	if err := tx.QueryRowContext(ctx, `SELECT rating FROM players WHERE id = $1 FOR UPDATE;`, playerID).Scan(&rating); err != nil {
		return fmt.Errorf("failed to read player rating: %v", err)
	}

	score := 0.5
	won, drawn := 0, 1
	if record.Winner != nil {
		drawn = 0
		if *record.Winner == domain.Red {
			score = 1.0
			won = 1
		} else {
			score = 0.0
		}
	}
	newRating := domain.CalculateElo(rating, domain.TierRating(record.Difficulty), score)

	query := `
	UPDATE players
	SET games_played = games_played + 1,
	    games_won = games_won + $2,
	    games_drawn = games_drawn + $3,
	    rating = $4
	WHERE id = $1;
	`
	if _, err := tx.ExecContext(ctx, query, playerID, won, drawn, newRating); err != nil {
		return fmt.Errorf("failed to update player stats: %v", err)
	}
	return nil
}

const gameSelectFields = `game_id, player_id, COALESCE(player_name, ''), mode, COALESCE(difficulty, ''), starting_side, winner, total_moves, duration_seconds, created_at, finished_at`

func scanGame(row interface{ Scan(dest ...any) error }) (*GameResult, error) {
	var result GameResult
	var playerID sql.NullInt64
	var winner sql.NullString

	err := row.Scan(
		&result.GameID,
		&playerID,
		&result.PlayerName,
		&result.Mode,
		&result.Difficulty,
		&result.StartingSide,
		&winner,
		&result.TotalMoves,
		&result.DurationSeconds,
		&result.CreatedAt,
		&result.FinishedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if playerID.Valid {
		id := playerID.Int64
		result.PlayerID = &id
	}
	if winner.Valid {
		result.Winner = winner.String
	}
	return &result, nil
}

// GetGameByID retrieves one game with its move log and final board.
func (r *GameRepo) GetGameByID(ctx context.Context, gameID string) (*GameResult, error) {
	query := `SELECT ` + gameSelectFields + `, moves, final_board FROM games WHERE game_id = $1;`

	var result GameResult
	var playerID sql.NullInt64
	var winner sql.NullString
	var movesJSON, boardJSON []byte

	err := r.DB.QueryRowContext(ctx, query, gameID).Scan(
		&result.GameID,
		&playerID,
		&result.PlayerName,
		&result.Mode,
		&result.Difficulty,
		&result.StartingSide,
		&winner,
		&result.TotalMoves,
		&result.DurationSeconds,
		&result.CreatedAt,
		&result.FinishedAt,
		&movesJSON,
		&boardJSON,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game by ID: %v", err)
	}

	if playerID.Valid {
		id := playerID.Int64
		result.PlayerID = &id
	}
	if winner.Valid {
		result.Winner = winner.String
	}
	if err := json.Unmarshal(movesJSON, &result.Moves); err != nil {
		return nil, fmt.Errorf("failed to unmarshal move log: %v", err)
	}
	if err := json.Unmarshal(boardJSON, &result.FinalBoard); err != nil {
		return nil, fmt.Errorf("failed to unmarshal final board: %v", err)
	}

	return &result, nil
}

// GetUserGameHistory lists a player's finished games, newest first.
func (r *GameRepo) GetUserGameHistory(ctx context.Context, playerID int64) ([]GameResult, error) {
	query := `SELECT ` + gameSelectFields + ` FROM games WHERE player_id = $1 ORDER BY finished_at DESC;`

	rows, err := r.DB.QueryContext(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query game history: %v", err)
	}
	defer rows.Close()

	var games []GameResult
	for rows.Next() {
		result, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game row: %v", err)
		}
		games = append(games, *result)
	}
	return games, rows.Err()
}

// GetRecentGames lists the latest finished games regardless of player.
func (r *GameRepo) GetRecentGames(ctx context.Context, limit int) ([]GameResult, error) {
	query := `SELECT ` + gameSelectFields + ` FROM games ORDER BY finished_at DESC LIMIT $1;`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent games: %v", err)
	}
	defer rows.Close()

	var games []GameResult
	for rows.Next() {
		result, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game row: %v", err)
		}
		games = append(games, *result)
	}
	return games, rows.Err()
}
