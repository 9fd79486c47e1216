package analyzers

import (
	"gitlab.com/aoterocom/AOBaccarat/models"
	"gitlab.com/aoterocom/AOBaccarat/models/analytics"
)

// DefaultWindow is the trailing window size, and also the minimum history length for a trend
const DefaultWindow = 10

// AnalyzeTrends looks at the last window results. It reports false when the history is shorter
// than the window; callers fall back to baseline scoring in that case.
func AnalyzeTrends(history []models.Outcome, window int) (analytics.TrendSnapshot, bool) {
	if window <= 0 || len(history) < window {
		return analytics.TrendSnapshot{}, false
	}

	recent := history[len(history)-window:]
	snapshot := analytics.TrendSnapshot{
		Window:     window,
		LastResult: recent[len(recent)-1],
	}

	var playerCount, bankerCount, tieCount int
	for _, result := range recent {
		switch result {
		case models.OutcomePlayer:
			playerCount++
		case models.OutcomeBanker:
			bankerCount++
		case models.OutcomeTie:
			tieCount++
		}
	}
	snapshot.Distribution = analytics.Distribution{
		Player: float64(playerCount) / float64(window),
		Banker: float64(bankerCount) / float64(window),
		Tie:    float64(tieCount) / float64(window),
	}

	// Ties neither extend nor break a streak
	streaks := analytics.Streaks{}
	currentStreak := models.OutcomeEmpty
	currentCount := 0
	for _, result := range recent {
		if result == models.OutcomeTie {
			continue
		}
		if result == currentStreak {
			currentCount++
			continue
		}
		closeStreak(&streaks, currentStreak, currentCount)
		currentStreak = result
		currentCount = 1
	}
	closeStreak(&streaks, currentStreak, currentCount)
	switch currentStreak {
	case models.OutcomePlayer:
		streaks.Player = currentCount
	case models.OutcomeBanker:
		streaks.Banker = currentCount
	}
	snapshot.Streaks = streaks

	alternations := 0
	for i := 0; i < len(recent)-1; i++ {
		if recent[i] == models.OutcomeTie || recent[i+1] == models.OutcomeTie {
			continue
		}
		if recent[i] != recent[i+1] {
			alternations++
		}
	}
	if window > 1 {
		snapshot.AlternationRate = float64(alternations) / float64(window-1)
	}

	return snapshot, true
}

func closeStreak(streaks *analytics.Streaks, outcome models.Outcome, count int) {
	switch outcome {
	case models.OutcomePlayer:
		if count > streaks.MaxPlayer {
			streaks.MaxPlayer = count
		}
	case models.OutcomeBanker:
		if count > streaks.MaxBanker {
			streaks.MaxBanker = count
		}
	}
}
