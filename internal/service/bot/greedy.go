package bot

import (
	"github.com/Kennethenow1/Connect-Four-Game/internal/domain"
)

// centerOrder is the fixed center-out column preference.
var centerOrder = [domain.Columns]int{3, 2, 4, 1, 5, 0, 6}

// chooseGreedy plays the first branch that applies, in fixed order:
// take an immediate win, block the opponent's immediate win, take the
// first open column center-out, fall back to random.
func chooseGreedy(board [][]domain.Side, side domain.Side) int {
	validColumns := domain.GetValidMoves(board)
	if len(validColumns) == 0 {
		return -1
	}

	opponent := side.Opponent()

	for _, col := range validColumns {
		testBoard, row, _ := domain.SimulateMove(board, col, side)
		if domain.HasWin(testBoard, row, col, side) {
			return col
		}
	}

	for _, col := range validColumns {
		testBoard, row, _ := domain.SimulateMove(board, col, opponent)
		if domain.HasWin(testBoard, row, col, opponent) {
			return col
		}
	}

	for _, col := range centerOrder {
		if domain.IsValidMove(board, col) {
			return col
		}
	}

	return chooseRandom(board)
}
