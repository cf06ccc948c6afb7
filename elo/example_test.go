package elo_test

import (
	"fmt"
	"math"

	"github.com/goserg/skillratings/elo"
)

func ExampleCalculate() {
	playerOne := elo.NewRating()
	playerTwo := elo.NewRating()

	newOne, newTwo := elo.Calculate(playerOne, playerTwo, elo.Win, elo.NewConfig())

	fmt.Println(newOne, newTwo)
	// Output: 1016 984
}

func ExampleExpectedScore() {
	expectedOne, expectedTwo := elo.ExpectedScore(1320, 1217)

	fmt.Printf("%.2f %.2f\n", expectedOne, expectedTwo)
	// Output: 0.64 0.36
}

func ExampleRatingPeriod() {
	player := elo.NewRating()

	newRating := elo.RatingPeriod(player, []elo.Result{
		{Opponent: 1000, Outcome: elo.Win},
		{Opponent: 1000, Outcome: elo.Win},
		{Opponent: 1000, Outcome: elo.Win},
	}, elo.NewConfig())

	fmt.Println(math.Round(float64(newRating)))
	// Output: 1046
}
