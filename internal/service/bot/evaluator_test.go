package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kennethenow1/Connect-Four-Game/internal/domain"
)

func TestEvaluateEmptyBoardIsNeutral(t *testing.T) {
	board := domain.NewBoard()
	assert.Equal(t, 0, Evaluate(board, domain.Red))
	assert.Equal(t, 0, Evaluate(board, domain.Yellow))
}

func TestEvaluateIsPure(t *testing.T) {
	board := domain.NewBoard()
	domain.DropDisk(board, 3, domain.Red)
	domain.DropDisk(board, 2, domain.Yellow)
	domain.DropDisk(board, 3, domain.Red)

	before := domain.CopyBoard(board)
	first := Evaluate(board, domain.Red)
	second := Evaluate(board, domain.Red)

	assert.Equal(t, first, second)
	assert.Equal(t, before, board)
}

func TestEvaluateSignSymmetry(t *testing.T) {
	board := domain.NewBoard()
	domain.DropDisk(board, 3, domain.Red)
	domain.DropDisk(board, 0, domain.Yellow)
	domain.DropDisk(board, 3, domain.Red)
	domain.DropDisk(board, 6, domain.Yellow)

	assert.Equal(t, Evaluate(board, domain.Red), -Evaluate(board, domain.Yellow))
}

func TestEvaluateTerminalDominates(t *testing.T) {
	board := domain.NewBoard()
	for col := 0; col < domain.ToWin; col++ {
		domain.DropDisk(board, col, domain.Red)
	}
	// yellow stacks the center column, the strongest positional asset
	for i := 0; i < 3; i++ {
		domain.DropDisk(board, 3, domain.Yellow)
	}

	assert.Equal(t, ScoreWin, Evaluate(board, domain.Red))
	assert.Equal(t, -ScoreWin, Evaluate(board, domain.Yellow))
}

func TestEvaluatePrefersCenter(t *testing.T) {
	center := domain.NewBoard()
	_, err := domain.DropDisk(center, 3, domain.Red)
	require.NoError(t, err)

	edge := domain.NewBoard()
	_, err = domain.DropDisk(edge, 0, domain.Red)
	require.NoError(t, err)

	assert.Greater(t, Evaluate(center, domain.Red), Evaluate(edge, domain.Red))
}

func TestEvaluateCountsAdjacentPairs(t *testing.T) {
	single := domain.NewBoard()
	domain.DropDisk(single, 0, domain.Red)

	pair := domain.NewBoard()
	domain.DropDisk(pair, 0, domain.Red)
	domain.DropDisk(pair, 1, domain.Red)

	assert.Greater(t, Evaluate(pair, domain.Red), Evaluate(single, domain.Red))
}
