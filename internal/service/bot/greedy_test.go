package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kennethenow1/Connect-Four-Game/internal/domain"
)

func TestGreedyTakesImmediateWin(t *testing.T) {
	board := domain.NewBoard()
	for col := 0; col < 3; col++ {
		domain.DropDisk(board, col, domain.Yellow)
	}
	domain.DropDisk(board, 5, domain.Red)
	domain.DropDisk(board, 6, domain.Red)

	assert.Equal(t, 3, chooseGreedy(board, domain.Yellow))
}

func TestGreedyBlocksImmediateThreat(t *testing.T) {
	board := domain.NewBoard()
	domain.DropDisk(board, 0, domain.Red)
	domain.DropDisk(board, 1, domain.Red)
	domain.DropDisk(board, 2, domain.Red)

	assert.Equal(t, 3, chooseGreedy(board, domain.Yellow))
}

func TestGreedyWinBeatsBlock(t *testing.T) {
	// both sides threaten; taking the win outranks blocking
	board := domain.NewBoard()
	for i := 0; i < 3; i++ {
		domain.DropDisk(board, 0, domain.Red)
		domain.DropDisk(board, 6, domain.Yellow)
	}

	assert.Equal(t, 6, chooseGreedy(board, domain.Yellow))
	assert.Equal(t, 0, chooseGreedy(board, domain.Red))
}

func TestGreedyPrefersCenterOut(t *testing.T) {
	board := domain.NewBoard()
	assert.Equal(t, 3, chooseGreedy(board, domain.Red))

	for i := 0; i < domain.Rows; i++ {
		domain.DropDisk(board, 3, domain.Red)
		domain.DropDisk(board, 3, domain.Yellow)
	}
	// center full, next preference is its left neighbor
	assert.Equal(t, 2, chooseGreedy(board, domain.Yellow))
}

func TestGreedyFullBoard(t *testing.T) {
	assert.Equal(t, -1, chooseGreedy(fullBoard(), domain.Red))
}
