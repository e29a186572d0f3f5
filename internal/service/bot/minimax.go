package bot

import (
	"math"

	"github.com/Kennethenow1/Connect-Four-Game/internal/domain"
)

// DefaultSearchDepth is the lookahead for the Search tier in plies.
const DefaultSearchDepth = 5

// ChooseSearch implements the Search tier: minimax with alpha-beta
// pruning over cloned boards. Win scores are biased by remaining depth so
// faster forced wins (and slower forced losses) are preferred. Ties keep
// the first column encountered in ascending order.
func ChooseSearch(board [][]domain.Side, side domain.Side, depth int) int {
	validColumns := domain.GetValidMoves(board)
	if len(validColumns) == 0 {
		return -1
	}
	if depth < 1 {
		depth = 1
	}

	opponent := side.Opponent()

	bestCol := -1
	bestScore := math.MinInt
	alpha := math.MinInt
	beta := math.MaxInt

	for _, col := range validColumns {
		testBoard, row, _ := domain.SimulateMove(board, col, side)

		var score int
		if domain.HasWin(testBoard, row, col, side) {
			score = ScoreWin + depth
		} else {
			// keep the full depth for the reply layer so even a
			// one-ply search sees the opponent's immediate wins
			score = minimax(testBoard, depth, alpha, beta, false, side, opponent)
		}

		if score > bestScore {
			bestScore = score
			bestCol = col
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			break
		}
	}

	return bestCol
}

// minimax walks the game tree, alternating maximizing (side) and
// minimizing (opponent) layers. All child positions are simulated on
// clones; no board passed in is ever mutated.
func minimax(board [][]domain.Side, depth, alpha, beta int, isMaximizing bool, side, opponent domain.Side) int {
	validColumns := domain.GetValidMoves(board)
	if len(validColumns) == 0 {
		return 0
	}
	if depth == 0 {
		return Evaluate(board, side)
	}

	if isMaximizing {
		maxEval := math.MinInt
		for _, col := range validColumns {
			testBoard, row, _ := domain.SimulateMove(board, col, side)

			if domain.HasWin(testBoard, row, col, side) {
				return ScoreWin + depth
			}

			eval := minimax(testBoard, depth-1, alpha, beta, false, side, opponent)
			if eval > maxEval {
				maxEval = eval
			}
			if eval > alpha {
				alpha = eval
			}
			if alpha >= beta {
				break
			}
		}
		return maxEval
	}

	minEval := math.MaxInt
	for _, col := range validColumns {
		testBoard, row, _ := domain.SimulateMove(board, col, opponent)

		if domain.HasWin(testBoard, row, col, opponent) {
			return -(ScoreWin + depth)
		}

		eval := minimax(testBoard, depth-1, alpha, beta, true, side, opponent)
		if eval < minEval {
			minEval = eval
		}
		if eval < beta {
			beta = eval
		}
		if alpha >= beta {
			break
		}
	}
	return minEval
}
