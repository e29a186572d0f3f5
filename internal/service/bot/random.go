package bot

import (
	"math/rand"

	"github.com/Kennethenow1/Connect-Four-Game/internal/domain"
)

// chooseRandom picks uniformly among the legal columns.
func chooseRandom(board [][]domain.Side) int {
	validColumns := domain.GetValidMoves(board)
	if len(validColumns) == 0 {
		return -1
	}
	return validColumns[rand.Intn(len(validColumns))]
}
