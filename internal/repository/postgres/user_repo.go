package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type UserRepo struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db}
}

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	GamesPlayed  int
	GamesWon     int
	GamesDrawn   int
	Rating       int
	CreatedAt    time.Time
}

type PlayerStats struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Rating   int    `json:"rating"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Draws    int    `json:"draws"`
}

// UserResponse returns a consistent JSON-friendly map of user data
func (u *User) UserResponse() map[string]interface{} {
	return map[string]interface{}{
		"id":       u.ID,
		"username": u.Username,
		"rating":   u.Rating,
		"wins":     u.GamesWon,
		"losses":   u.GamesPlayed - u.GamesWon - u.GamesDrawn,
		"draws":    u.GamesDrawn,
	}
}

// CreateUser creates a new user with a hashed password.
func (r *UserRepo) CreateUser(ctx context.Context, username, passwordHash string) (int64, error) {
	query := `
	INSERT INTO players (username, password_hash, games_played, games_won, games_drawn, rating)
	VALUES ($1, $2, 0, 0, 0, 1000)
	RETURNING id;
	`
	var userID int64
	err := r.DB.QueryRowContext(ctx, query, username, passwordHash).Scan(&userID)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %v", err)
	}
	return userID, nil
}

const userSelectFields = `id, username, password_hash, games_played, games_won, games_drawn, rating, created_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.GamesPlayed,
		&user.GamesWon,
		&user.GamesDrawn,
		&user.Rating,
		&user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username
func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT ` + userSelectFields + ` FROM players WHERE username = $1;`
	user, err := scanUser(r.DB.QueryRowContext(ctx, query, username))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepo) GetUserByID(ctx context.Context, id int64) (*User, error) {
	query := `SELECT ` + userSelectFields + ` FROM players WHERE id = $1;`
	user, err := scanUser(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	return user, nil
}

// Leaderboard lists the top-rated players.
func (r *UserRepo) Leaderboard(ctx context.Context, limit int) ([]PlayerStats, error) {
	query := `
	SELECT username, rating, games_won, games_played - games_won - games_drawn, games_drawn
	FROM players
	ORDER BY rating DESC, games_won DESC
	LIMIT $1;
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %v", err)
	}
	defer rows.Close()

	var stats []PlayerStats
	rank := 1
	for rows.Next() {
		var s PlayerStats
		if err := rows.Scan(&s.Username, &s.Rating, &s.Wins, &s.Losses, &s.Draws); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %v", err)
		}
		s.Rank = rank
		rank++
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
