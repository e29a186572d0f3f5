package domain

import "math"

const KFactor = 32.0

// Fixed opponent ratings per AI tier, used when rating a player after a
// human-vs-AI game.
var tierRatings = map[Difficulty]int{
	DifficultyRandom: 800,
	DifficultyGreedy: 1200,
	DifficultySearch: 1600,
}

func TierRating(difficulty Difficulty) int {
	if r, ok := tierRatings[difficulty]; ok {
		return r
	}
	return 1200
}

// CalculateElo returns the new rating for player A.
// score is 1.0 for a win, 0.5 for a draw, and 0.0 for a loss.
func CalculateElo(ratingA, ratingB int, score float64) int {
	expectedScoreA := 1.0 / (1.0 + math.Pow(10.0, float64(ratingB-ratingA)/400.0))
	newRating := float64(ratingA) + KFactor*(score-expectedScoreA)

	if newRating < 0 {
		return 0
	}
	return int(newRating)
}
