package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateElo(t *testing.T) {
	// even matchup: winner gains half the K factor
	assert.Equal(t, 1016, CalculateElo(1000, 1000, 1.0))
	assert.Equal(t, 984, CalculateElo(1000, 1000, 0.0))
	assert.Equal(t, 1000, CalculateElo(1000, 1000, 0.5))

	// beating a stronger opponent pays more than beating a weaker one
	vsStrong := CalculateElo(1000, 1600, 1.0) - 1000
	vsWeak := CalculateElo(1000, 800, 1.0) - 1000
	assert.Greater(t, vsStrong, vsWeak)

	// rating never goes negative
	assert.Equal(t, 0, CalculateElo(5, 5, 0.0))
}

func TestTierRating(t *testing.T) {
	assert.Equal(t, 800, TierRating(DifficultyRandom))
	assert.Equal(t, 1200, TierRating(DifficultyGreedy))
	assert.Equal(t, 1600, TierRating(DifficultySearch))
	assert.Equal(t, 1200, TierRating(Difficulty("unknown")))
}
