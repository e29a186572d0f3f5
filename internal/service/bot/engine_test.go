package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kennethenow1/Connect-Four-Game/internal/domain"
)

func fullBoard() [][]domain.Side {
	board := domain.NewBoard()
	side := domain.Red
	for col := 0; col < domain.Columns; col++ {
		for i := 0; i < domain.Rows; i++ {
			domain.DropDisk(board, col, side)
			side = side.Opponent()
		}
	}
	return board
}

func TestChooseRandomStaysLegal(t *testing.T) {
	board := domain.NewBoard()
	for i := 0; i < domain.Rows; i++ {
		domain.DropDisk(board, 0, domain.Red)
		domain.DropDisk(board, 6, domain.Yellow)
	}

	for i := 0; i < 50; i++ {
		col := chooseRandom(board)
		assert.True(t, domain.IsValidMove(board, col))
	}
}

func TestChooseRandomSingleColumn(t *testing.T) {
	board := domain.NewBoard()
	side := domain.Red
	for col := 0; col < domain.Columns; col++ {
		if col == 2 {
			continue
		}
		for i := 0; i < domain.Rows; i++ {
			domain.DropDisk(board, col, side)
			side = side.Opponent()
		}
	}

	require.Equal(t, []int{2}, domain.GetValidMoves(board))
	assert.Equal(t, 2, chooseRandom(board))
}

func TestChooseMoveFullBoard(t *testing.T) {
	board := fullBoard()
	for _, difficulty := range []domain.Difficulty{
		domain.DifficultyRandom, domain.DifficultyGreedy, domain.DifficultySearch,
	} {
		assert.Equal(t, -1, ChooseMove(board, domain.Red, difficulty), string(difficulty))
	}
}

func TestChooseMoveNeverMutates(t *testing.T) {
	board := domain.NewBoard()
	domain.DropDisk(board, 3, domain.Red)
	domain.DropDisk(board, 3, domain.Yellow)
	before := domain.CopyBoard(board)

	for _, difficulty := range []domain.Difficulty{
		domain.DifficultyRandom, domain.DifficultyGreedy, domain.DifficultySearch,
	} {
		ChooseMoveDepth(board, domain.Red, difficulty, 3)
		assert.Equal(t, before, board, string(difficulty))
	}
}

func TestReactionFor(t *testing.T) {
	board := domain.NewBoard()
	for col := 0; col < 3; col++ {
		domain.DropDisk(board, col, domain.Yellow)
	}

	// completing yellow's own run
	assert.Equal(t, domain.ReactionWinning, ReactionFor(board, 3, domain.Yellow))
	// red occupying the same square denies it
	assert.Equal(t, domain.ReactionBlocking, ReactionFor(board, 3, domain.Red))
	assert.Equal(t, domain.ReactionNeutral, ReactionFor(board, 5, domain.Red))
}
