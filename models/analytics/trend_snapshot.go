package analytics

import "gitlab.com/aoterocom/AOBaccarat/models"

type Distribution struct {
	Player float64
	Banker float64
	Tie    float64
}

type Streaks struct {
	// Player and Banker hold the streak still running at the end of the window; at most one is non-zero
	Player    int
	Banker    int
	MaxPlayer int
	MaxBanker int
}

// TrendSnapshot describes the trailing window of the result history
type TrendSnapshot struct {
	Window          int
	Distribution    Distribution
	Streaks         Streaks
	AlternationRate float64
	LastResult      models.Outcome
}
