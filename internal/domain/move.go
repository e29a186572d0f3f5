package domain

import "time"

// Move records one accepted placement. Immutable once created; the
// session appends it to an ordered log that is only cleared by a new game.
type Move struct {
	Turn     int      `json:"turn"`
	Side     Side     `json:"side"`
	Column   int      `json:"column"`
	Row      int      `json:"row"`
	Reaction Reaction `json:"reaction,omitempty"`
}

// Record is the finalized session handed to the persistence collaborator
// once a game reaches a terminal state. It is never mutated afterwards.
type Record struct {
	ID           string     `json:"id"`
	StartedAt    time.Time  `json:"startedAt"`
	FinishedAt   time.Time  `json:"finishedAt"`
	Mode         Mode       `json:"mode"`
	Difficulty   Difficulty `json:"difficulty,omitempty"`
	StartingSide Side       `json:"startingSide"`
	Moves        []Move     `json:"moves"`
	FinalBoard   [][]Side   `json:"finalBoard"`
	Winner       *Side      `json:"winner"`
	WinLine      []Coord    `json:"winLine,omitempty"`

	// Optional account attribution for human-vs-AI games.
	PlayerID   *int64 `json:"playerId,omitempty"`
	PlayerName string `json:"playerName,omitempty"`
}

// TotalMoves is the length of the ordered move log.
func (r *Record) TotalMoves() int {
	return len(r.Moves)
}

// DurationSeconds is the wall-clock length of the game.
func (r *Record) DurationSeconds() int {
	return int(r.FinishedAt.Sub(r.StartedAt).Seconds())
}
