package bot

import (
	"math/rand"
	"time"

	"github.com/Kennethenow1/Connect-Four-Game/internal/domain"
)

// ChooseMove selects a column for side at the given strength tier. The
// returned column is always legal; -1 is returned only when the board has
// no legal columns at all. The input board is never mutated.
func ChooseMove(board [][]domain.Side, side domain.Side, difficulty domain.Difficulty) int {
	return ChooseMoveDepth(board, side, difficulty, DefaultSearchDepth)
}

// ChooseMoveDepth is ChooseMove with an explicit search depth for the
// Search tier; the other tiers ignore it.
func ChooseMoveDepth(board [][]domain.Side, side domain.Side, difficulty domain.Difficulty, depth int) int {
	switch difficulty {
	case domain.DifficultyRandom:
		return chooseRandom(board)
	case domain.DifficultyGreedy:
		return chooseGreedy(board, side)
	case domain.DifficultySearch:
		return ChooseSearch(board, side, depth)
	default:
		return chooseGreedy(board, side)
	}
}

// ReactionFor derives cosmetic expression metadata for a chosen column,
// evaluated against the board before the move lands. It has no gameplay
// semantics.
func ReactionFor(board [][]domain.Side, column int, side domain.Side) domain.Reaction {
	if testBoard, row, err := domain.SimulateMove(board, column, side); err == nil {
		if domain.HasWin(testBoard, row, column, side) {
			return domain.ReactionWinning
		}
	}

	opponent := side.Opponent()
	if testBoard, row, err := domain.SimulateMove(board, column, opponent); err == nil {
		if domain.HasWin(testBoard, row, column, opponent) {
			return domain.ReactionBlocking
		}
	}

	return domain.ReactionNeutral
}

// ThinkDelay sleeps for a short randomized interval so AI replies feel
// paced. Purely presentation; move computation never depends on it.
func ThinkDelay() {
	time.Sleep(time.Duration(500+rand.Intn(500)) * time.Millisecond)
}
