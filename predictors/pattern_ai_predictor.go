package predictors

import (
	"gitlab.com/aoterocom/AOBaccarat/analyzers"
	"gitlab.com/aoterocom/AOBaccarat/helpers"
	"gitlab.com/aoterocom/AOBaccarat/models"
	"gitlab.com/aoterocom/AOBaccarat/models/analytics"
)

const PatternAIName = "PATTERN AI"

// PatternAIPredictor scores grid frequencies and the recent trend, expecting runs to revert
type PatternAIPredictor struct {
	recentTrendWeight    float64
	streaksWeight        float64
	matrixPatternsWeight float64
}

func NewPatternAIPredictor() PatternAIPredictor {
	return PatternAIPredictor{
		recentTrendWeight:    0.4,
		streaksWeight:        0.3,
		matrixPatternsWeight: 0.3,
	}
}

func (p PatternAIPredictor) Name() string {
	return PatternAIName
}

func (p PatternAIPredictor) Predict(grid models.Grid, history []models.Outcome) models.Prediction {
	features := analyzers.BuildFeatures(grid, history)

	playerScore, bankerScore := p.analyzeMatrixPatterns(features.Sequences)
	playerScore *= p.matrixPatternsWeight
	bankerScore *= p.matrixPatternsWeight

	if features.HasTrend {
		trend := features.Trend
		trendPlayer, trendBanker := p.analyzeTrends(trend)
		playerScore += trendPlayer * p.recentTrendWeight
		bankerScore += trendBanker * p.recentTrendWeight

		streakPlayer, streakBanker := p.analyzeStreaks(trend)
		playerScore += streakPlayer * p.streaksWeight
		bankerScore += streakBanker * p.streaksWeight
	}

	// Nothing fired: fall back to the baseline pair rather than a 0/0 share
	if playerScore+bankerScore == 0 {
		playerScore, bankerScore = BaselinePlayer, BaselineBanker
	}

	return decide(p.Name(), playerScore, bankerScore)
}

func (p PatternAIPredictor) analyzeMatrixPatterns(sequences analytics.SequenceCounts) (playerScore float64, bankerScore float64) {
	// Slight Player boost before comparing totals
	adjustedP := float64(sequences["P"]) * 1.05
	adjustedB := float64(sequences["B"])

	if adjustedP > adjustedB*1.5 {
		bankerScore += 0.6
	} else if adjustedB > adjustedP*1.5 {
		playerScore += 0.6
	}

	// Alternating pairs point at the other side
	if sequences["PB"] > sequences["PP"] {
		bankerScore += 0.4
	}
	if sequences["BP"] > sequences["BB"] {
		playerScore += 0.4
	}

	// Long single-side runs tend to turn
	if sequences["PPP"] > 0 {
		bankerScore += 0.3
	}
	if sequences["BBB"] > 0 {
		playerScore += 0.3
	}

	return playerScore, bankerScore
}

func (p PatternAIPredictor) analyzeTrends(trend analytics.TrendSnapshot) (playerScore float64, bankerScore float64) {
	adjustedP := trend.Distribution.Player
	adjustedB := trend.Distribution.Banker * 1.05

	if adjustedP > adjustedB*1.5 {
		bankerScore += 0.7
	} else if adjustedB > adjustedP*1.5 {
		playerScore += 0.7
	}

	switch trend.LastResult {
	case models.OutcomePlayer:
		bankerScore += 0.3
	case models.OutcomeBanker:
		playerScore += 0.3
	}

	return playerScore, bankerScore
}

func (p PatternAIPredictor) analyzeStreaks(trend analytics.TrendSnapshot) (playerScore float64, bankerScore float64) {
	streaks := trend.Streaks

	if trend.AlternationRate > 0.6 {
		switch trend.LastResult {
		case models.OutcomePlayer:
			bankerScore += 0.5
		case models.OutcomeBanker:
			playerScore += 0.5
		}
	}

	if streaks.Player >= 3 {
		bankerScore += streakCorrection(streaks.Player)
	}
	if streaks.Banker >= 3 {
		playerScore += streakCorrection(streaks.Banker)
	}

	// A side that has barely shown up is due
	if streaks.MaxPlayer == 0 || (streaks.MaxPlayer == 1 && streaks.Player == 0) {
		playerScore += 0.4
	}
	if streaks.MaxBanker == 0 || (streaks.MaxBanker == 1 && streaks.Banker == 0) {
		bankerScore += 0.4
	}

	return playerScore, bankerScore
}

// streakCorrection is 0.6 * (1 - e^(-0.2*length))
func streakCorrection(length int) float64 {
	return 0.6 * helpers.Saturation(float64(length), 0.2)
}
