// Package elo implements the Elo rating system for two-player games.
//
// Ratings are plain float64 values; every function is a pure
// transformation of its inputs, so callers own persistence and
// player identity.
package elo

import "math"

// Rating is a player's Elo rating.
type Rating float64

// NewRating returns the traditional Elo starting rating of 1000.
func NewRating() Rating {
	return 1000
}

// Outcome is the result of a game from player one's perspective:
// Win means player one won, Loss means player two won.
type Outcome uint8

const (
	Win Outcome = iota
	Loss
	Draw
)

// Config holds the parameters of the rating calculation.
type Config struct {
	// K is the k-factor, the maximum rating change for a single game.
	K float64
}

// NewConfig returns a Config with the default k-factor of 32.
func NewConfig() Config {
	return Config{K: 32}
}

// Result is one game of a rating period: the opponent's rating and
// the outcome from the rated player's perspective.
type Result struct {
	Opponent Rating
	Outcome  Outcome
}

// ExpectedScore returns the expected score of each player based on
// their ratings. A score of 1 means a certain win, 0 a certain loss
// and 0.5 a draw. The two scores sum to 1.
func ExpectedScore(playerOne, playerTwo Rating) (float64, float64) {
	expectedOne := 1.0 / (1.0 + math.Pow(10, float64(playerTwo-playerOne)/400.0))
	expectedTwo := 1.0 / (1.0 + math.Pow(10, float64(playerOne-playerTwo)/400.0))
	return expectedOne, expectedTwo
}

// Calculate returns the new ratings of both players after a game.
// The outcome is from player one's perspective: Win is a win for
// player one, Loss is a win for player two. The update is zero-sum,
// player one gains exactly what player two loses.
func Calculate(playerOne, playerTwo Rating, outcome Outcome, config Config) (Rating, Rating) {
	expectedOne, expectedTwo := ExpectedScore(playerOne, playerTwo)

	var score float64
	switch outcome {
	case Win:
		score = 1
	case Loss:
		score = 0
	case Draw:
		score = 0.5
	}

	newOne := math.FMA(config.K, score-expectedOne, float64(playerOne))
	newTwo := math.FMA(config.K, (1-score)-expectedTwo, float64(playerTwo))

	return Rating(newOne), Rating(newTwo)
}

// RatingPeriod applies a sequence of results to one player's rating
// and returns the final rating. Results are processed in order with
// the player's running rating against each opponent's original
// rating; opponents' own rating changes are discarded. The empty
// sequence returns the rating unchanged.
func RatingPeriod(player Rating, results []Result, config Config) Rating {
	for _, result := range results {
		player, _ = Calculate(player, result.Opponent, result.Outcome, config)
	}
	return player
}
