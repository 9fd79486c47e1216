package predictors

import (
	"math"

	"gitlab.com/aoterocom/AOBaccarat/analyzers"
	"gitlab.com/aoterocom/AOBaccarat/helpers"
	"gitlab.com/aoterocom/AOBaccarat/models"
	"gitlab.com/aoterocom/AOBaccarat/models/analytics"
)

const DeepBaccaratName = "DEEP BACCARAT"

// DeepBaccaratPredictor starts from the real odds and pulls recent deviations back towards them
type DeepBaccaratPredictor struct {
	// bankerBias is the house edge towards Banker, about 0.46%
	bankerBias float64

	historicalBiasFactor float64
	recentPatternsFactor float64
	streakFactor         float64
	headToHeadFactor     float64
}

func NewDeepBaccaratPredictor() DeepBaccaratPredictor {
	return DeepBaccaratPredictor{
		bankerBias:           0.0046,
		historicalBiasFactor: 0.30,
		recentPatternsFactor: 0.35,
		streakFactor:         0.20,
		headToHeadFactor:     0.15,
	}
}

func (d DeepBaccaratPredictor) Name() string {
	return DeepBaccaratName
}

func (d DeepBaccaratPredictor) Predict(grid models.Grid, history []models.Outcome) models.Prediction {
	features := analyzers.BuildFeatures(grid, history)

	matrixPlayer, matrixBanker := d.analyzeSequences(features.Sequences)
	playerScore := BaselinePlayer*d.historicalBiasFactor + matrixPlayer*(1-d.historicalBiasFactor)
	bankerScore := (BaselineBanker+d.bankerBias)*d.historicalBiasFactor + matrixBanker*(1-d.historicalBiasFactor)

	if features.HasTrend {
		recentPlayer, recentBanker := d.analyzeRecentTrends(features.Trend)
		streakPlayer, streakBanker := d.analyzeStreaks(features.Trend)
		h2hPlayer, h2hBanker := d.headToHead(features.Trend)

		carried := 1 - d.recentPatternsFactor - d.streakFactor - d.headToHeadFactor
		playerScore = playerScore*carried +
			recentPlayer*d.recentPatternsFactor +
			streakPlayer*d.streakFactor +
			h2hPlayer*d.headToHeadFactor
		bankerScore = bankerScore*carried +
			recentBanker*d.recentPatternsFactor +
			streakBanker*d.streakFactor +
			h2hBanker*d.headToHeadFactor
	}

	return decide(d.Name(), playerScore, bankerScore)
}

func (d DeepBaccaratPredictor) analyzeSequences(sequences analytics.SequenceCounts) (playerScore float64, bankerScore float64) {
	total := sequences.Total()
	if total == 0 {
		return 0.5, 0.5
	}

	playerScore = BaselinePlayer
	bankerScore = BaselineBanker

	playerRatio := float64(sequences["P"]) / float64(total)
	bankerRatio := float64(sequences["B"]) / float64(total)
	if playerRatio > 0.6 {
		bankerScore += 0.05
	} else if bankerRatio > 0.6 {
		playerScore += 0.05
	}

	if sequences["PB"] > 0 && sequences["PP"] < sequences["PB"] {
		bankerScore += 0.03
	}
	if sequences["BP"] > 0 && sequences["BB"] < sequences["BP"] {
		playerScore += 0.03
	}

	return playerScore, bankerScore
}

// analyzeRecentTrends regresses the window distribution towards the baseline
func (d DeepBaccaratPredictor) analyzeRecentTrends(trend analytics.TrendSnapshot) (playerScore float64, bankerScore float64) {
	playerDeviation := trend.Distribution.Player - BaselinePlayer
	bankerDeviation := trend.Distribution.Banker + d.bankerBias - BaselineBanker

	playerScore = BaselinePlayer - playerDeviation*0.7
	bankerScore = BaselineBanker - bankerDeviation*0.7

	switch trend.LastResult {
	case models.OutcomePlayer:
		bankerScore += 0.02
	case models.OutcomeBanker:
		playerScore += 0.02
	}

	return playerScore, bankerScore
}

func (d DeepBaccaratPredictor) analyzeStreaks(trend analytics.TrendSnapshot) (playerScore float64, bankerScore float64) {
	playerScore = BaselinePlayer
	bankerScore = BaselineBanker

	if trend.Streaks.Player >= 2 {
		correction := saturatingStreakCorrection(trend.Streaks.Player)
		playerScore -= correction
		bankerScore += correction
	}
	if trend.Streaks.Banker >= 2 {
		correction := saturatingStreakCorrection(trend.Streaks.Banker)
		bankerScore -= correction
		playerScore += correction
	}

	if trend.AlternationRate > 0.7 {
		// choppy table: expect the other side
		switch trend.LastResult {
		case models.OutcomePlayer:
			playerScore -= 0.05
			bankerScore += 0.05
		case models.OutcomeBanker:
			bankerScore -= 0.05
			playerScore += 0.05
		}
	} else if trend.AlternationRate < 0.3 {
		// streaky table: expect a repeat
		switch trend.LastResult {
		case models.OutcomePlayer:
			playerScore += 0.03
			bankerScore -= 0.03
		case models.OutcomeBanker:
			bankerScore += 0.03
			playerScore -= 0.03
		}
	}

	return playerScore, bankerScore
}

func (d DeepBaccaratPredictor) headToHead(trend analytics.TrendSnapshot) (playerScore float64, bankerScore float64) {
	playerScore = BaselinePlayer
	bankerScore = BaselineBanker

	difference := math.Abs(trend.Distribution.Player - trend.Distribution.Banker)
	if difference <= 0.2 {
		return playerScore, bankerScore
	}

	adjustment := math.Min(difference*0.5, 0.15)
	if trend.Distribution.Player > trend.Distribution.Banker {
		playerScore -= adjustment
		bankerScore += adjustment
	} else {
		bankerScore -= adjustment
		playerScore += adjustment
	}
	return playerScore, bankerScore
}

// saturatingStreakCorrection is 0.1 * (1 - e^(-0.3*length))
func saturatingStreakCorrection(length int) float64 {
	return 0.1 * helpers.Saturation(float64(length), 0.3)
}
