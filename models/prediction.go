package models

import "time"

// Prediction is what a scoring model hands back: Player or Banker and a confidence in [50, 99.9]
type Prediction struct {
	Model      string  `json:"model"`
	Outcome    Outcome `json:"outcome"`
	Confidence float64 `json:"confidence"`
}

// PredictionRecord is one completed round
type PredictionRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	Prediction Outcome   `json:"prediction"`
	Actual     Outcome   `json:"result"`
	Confidence float64   `json:"confidence"`
	Correct    bool      `json:"correct"`
}

func NewPredictionRecord(timestamp time.Time, prediction Outcome, actual Outcome, confidence float64) PredictionRecord {
	return PredictionRecord{
		Timestamp:  timestamp,
		Prediction: prediction,
		Actual:     actual,
		Confidence: confidence,
		Correct:    actual == prediction,
	}
}
