package predictors

import (
	"gitlab.com/aoterocom/AOBaccarat/helpers"
	"gitlab.com/aoterocom/AOBaccarat/models"
)

// Real baccarat win probabilities (no commission). Tie is about 0.0953 and is never predicted.
const (
	BaselinePlayer = 0.4462
	BaselineBanker = 0.4585
)

const (
	minConfidence = 50.0
	maxConfidence = 99.9
)

// decide picks Player only on a strictly larger score, so exact ties go to Banker.
// Confidence is the winner's share of the total, clamped to [50, 99.9].
func decide(name string, playerScore float64, bankerScore float64) models.Prediction {
	prediction := models.Prediction{Model: name, Outcome: models.OutcomeBanker, Confidence: minConfidence}
	if playerScore > bankerScore {
		prediction.Outcome = models.OutcomePlayer
	}

	total := playerScore + bankerScore
	if total <= 0 {
		return prediction
	}
	winScore := bankerScore
	if prediction.Outcome == models.OutcomePlayer {
		winScore = playerScore
	}
	prediction.Confidence = helpers.Clamp(winScore/total*100, minConfidence, maxConfidence)
	return prediction
}
