package interfaces

import (
	"gitlab.com/aoterocom/AOBaccarat/models"
)

type (
	// Predictor estimates the next hand. Implementations hold no mutable state, so Predict may be
	// called concurrently on the same value.
	Predictor interface {
		Name() string
		Predict(grid models.Grid, history []models.Outcome) models.Prediction
	}
)
