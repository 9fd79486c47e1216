package predictors

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/AOBaccarat/interfaces"
	"gitlab.com/aoterocom/AOBaccarat/models"
)

func mustGrid(t *testing.T, value string) models.Grid {
	grid, err := models.ParseGridString(value)
	require.NoError(t, err)
	return grid
}

func mustHistory(t *testing.T, value string) []models.Outcome {
	history, err := models.ParseHistory(value)
	require.NoError(t, err)
	return history
}

func allPredictors() []interfaces.Predictor {
	return []interfaces.Predictor{NewPatternAIPredictor(), NewDeepBaccaratPredictor()}
}

func TestDeepBaccaratBaselineOnly(t *testing.T) {
	prediction := NewDeepBaccaratPredictor().Predict(models.Grid{}, nil)

	playerScore := BaselinePlayer*0.3 + 0.5*0.7
	bankerScore := (BaselineBanker+0.0046)*0.3 + 0.5*0.7
	assert.Equal(t, models.OutcomeBanker, prediction.Outcome)
	assert.InDelta(t, bankerScore/(playerScore+bankerScore)*100, prediction.Confidence, 1e-9)
	assert.Equal(t, DeepBaccaratName, prediction.Model)
}

func TestPatternAIBaselineOnly(t *testing.T) {
	prediction := NewPatternAIPredictor().Predict(models.Grid{}, nil)

	assert.Equal(t, models.OutcomeBanker, prediction.Outcome)
	assert.InDelta(t, BaselineBanker/(BaselinePlayer+BaselineBanker)*100, prediction.Confidence, 1e-9)
}

func TestPatternAIExactTieGoesToBanker(t *testing.T) {
	// PB and BP both beat PP and BB, so each side gets 0.4
	prediction := NewPatternAIPredictor().Predict(mustGrid(t, "PBPB./...../...../...../....."), nil)

	assert.Equal(t, models.OutcomeBanker, prediction.Outcome)
	assert.Equal(t, 50.0, prediction.Confidence)
}

func TestPatternAIRevertsBankerHeavyGrid(t *testing.T) {
	prediction := NewPatternAIPredictor().Predict(mustGrid(t, "BBBBB/BBB../...../...../....."), nil)

	assert.Equal(t, models.OutcomePlayer, prediction.Outcome)
	assert.Equal(t, 99.9, prediction.Confidence)
}

func TestPatternAIBankerStreak(t *testing.T) {
	prediction := NewPatternAIPredictor().Predict(models.Grid{}, mustHistory(t, "BBBBBBBBBB"))

	assert.Equal(t, models.OutcomePlayer, prediction.Outcome)
	assert.Equal(t, 99.9, prediction.Confidence)
}

func TestPatternAIAlternatingHistory(t *testing.T) {
	prediction := NewPatternAIPredictor().Predict(models.Grid{}, mustHistory(t, "PBPBPBPBPB"))

	assert.Equal(t, models.OutcomePlayer, prediction.Outcome)
}

func TestDeepBaccaratBankerStreak(t *testing.T) {
	prediction := NewDeepBaccaratPredictor().Predict(models.Grid{}, mustHistory(t, "BBBBBBBBBB"))

	assert.Equal(t, models.OutcomePlayer, prediction.Outcome)
	assert.InDelta(t, 67.13, prediction.Confidence, 0.05)
}

func TestDeepBaccaratIgnoresShortHistory(t *testing.T) {
	withShortHistory := NewDeepBaccaratPredictor().Predict(models.Grid{}, mustHistory(t, "BBBBBBBBB"))
	withoutHistory := NewDeepBaccaratPredictor().Predict(models.Grid{}, nil)

	assert.Equal(t, withoutHistory, withShortHistory)
}

func TestSaturatingStreakCorrection(t *testing.T) {
	assert.InDelta(t, 0.0, saturatingStreakCorrection(0), 1e-12)
	assert.Less(t, saturatingStreakCorrection(2), saturatingStreakCorrection(5))
	assert.Less(t, saturatingStreakCorrection(50), 0.1)
}

func TestPredictionsStayInRangeAndRepeat(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	cells := []models.Outcome{models.OutcomeEmpty, models.OutcomePlayer, models.OutcomeBanker}
	results := []models.Outcome{models.OutcomePlayer, models.OutcomeBanker, models.OutcomeTie}

	for i := 0; i < 300; i++ {
		var grid models.Grid
		for r := 0; r < models.GridSize; r++ {
			for c := 0; c < models.GridSize; c++ {
				grid[r][c] = cells[random.Intn(len(cells))]
			}
		}
		history := make([]models.Outcome, random.Intn(30))
		for j := range history {
			history[j] = results[random.Intn(len(results))]
		}

		for _, predictor := range allPredictors() {
			first := predictor.Predict(grid, history)
			second := predictor.Predict(grid, history)

			assert.Equal(t, first, second)
			assert.Contains(t, []models.Outcome{models.OutcomePlayer, models.OutcomeBanker}, first.Outcome)
			assert.GreaterOrEqual(t, first.Confidence, 50.0)
			assert.LessOrEqual(t, first.Confidence, 99.9)
		}
	}
}

func TestPredictorFactory(t *testing.T) {
	predictor, err := PredictorFactory("patternAI")
	require.NoError(t, err)
	assert.Equal(t, PatternAIName, predictor.Name())

	predictor, err = PredictorFactory(DeepBaccaratName)
	require.NoError(t, err)
	assert.Equal(t, DeepBaccaratName, predictor.Name())

	_, err = PredictorFactory("coinFlip")
	assert.Error(t, err)

	configured, err := PredictorsFactory([]string{"deepBaccarat", " ", "patternAI"})
	require.NoError(t, err)
	assert.Len(t, configured, 2)

	_, err = PredictorsFactory(nil)
	assert.Error(t, err)
}

func TestPatternAIStreakCorrectionSaturates(t *testing.T) {
	assert.InDelta(t, 0.6*(1-math.Exp(-0.6)), streakCorrection(3), 1e-12)
	assert.Less(t, streakCorrection(3), streakCorrection(6))
	assert.Less(t, streakCorrection(100), 0.6)
}

func TestPatternAIFallsBackToBaselineWhenNoRuleFires(t *testing.T) {
	// two of each side, one PP and one PB pair: no frequency or pair rule applies
	prediction := NewPatternAIPredictor().Predict(mustGrid(t, "PPBB./...../...../...../....."), nil)

	assert.Equal(t, models.OutcomeBanker, prediction.Outcome)
	assert.InDelta(t, BaselineBanker/(BaselinePlayer+BaselineBanker)*100, prediction.Confidence, 1e-9)
	assert.InDelta(t, 50.68, prediction.Confidence, 0.005)
}
