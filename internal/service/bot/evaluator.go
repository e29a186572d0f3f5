package bot

import (
	"github.com/Kennethenow1/Connect-Four-Game/internal/domain"
)

const (
	// ScoreWin dominates every heuristic term so terminal positions
	// always outrank positional play.
	ScoreWin = 10000

	scoreCenter = 3
	scorePair   = 1
)

// pairDirections cover each adjacency axis once; scanning every cell with
// these four deltas counts every adjacent pair exactly once.
var pairDirections = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// Evaluate scores a position for side. Positive favors side, negative the
// opponent. Pure: same board and side always yield the same score.
func Evaluate(board [][]domain.Side, side domain.Side) int {
	opponent := side.Opponent()

	// Terminal positions first: any anchored four-in-a-row decides the
	// score outright.
	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			switch board[row][col] {
			case side:
				if domain.HasWin(board, row, col, side) {
					return ScoreWin
				}
			case opponent:
				if domain.HasWin(board, row, col, opponent) {
					return -ScoreWin
				}
			}
		}
	}

	score := 0

	// Center control bias.
	centerCol := domain.Columns / 2
	for row := 0; row < domain.Rows; row++ {
		switch board[row][centerCol] {
		case side:
			score += scoreCenter
		case opponent:
			score -= scoreCenter
		}
	}

	// Adjacent same-side pairs on all four axes.
	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			cell := board[row][col]
			if cell == domain.Empty {
				continue
			}
			for _, dir := range pairDirections {
				r, c := row+dir[0], col+dir[1]
				if r < 0 || r >= domain.Rows || c < 0 || c >= domain.Columns {
					continue
				}
				if board[r][c] != cell {
					continue
				}
				if cell == side {
					score += scorePair
				} else {
					score -= scorePair
				}
			}
		}
	}

	return score
}
