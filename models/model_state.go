package models

// ModelState is the accumulated record of a single scoring model. Predictions and Results are
// parallel: index i of both belongs to the same round.
type ModelState struct {
	Name        string
	Predictions []Outcome
	Results     []Outcome
	Accuracy    float64
}

type ModelStats struct {
	Name              string  `json:"name"`
	TotalPredictions  int     `json:"totalPredictions"`
	ValidPredictions  int     `json:"validPredictions"`
	Accuracy          float64 `json:"accuracy"`
	PlayerPredictions int     `json:"playerPredictions"`
	BankerPredictions int     `json:"bankerPredictions"`
	LastPrediction    Outcome `json:"lastPrediction"`
}

func NewModelState(name string) ModelState {
	return ModelState{Name: name}
}

// RecordAndRecompute returns a new state with the round appended and the accuracy refreshed.
// The receiver is left untouched.
func (s ModelState) RecordAndRecompute(prediction Outcome, result Outcome) ModelState {
	next := ModelState{
		Name:        s.Name,
		Predictions: make([]Outcome, len(s.Predictions), len(s.Predictions)+1),
		Results:     make([]Outcome, len(s.Results), len(s.Results)+1),
	}
	copy(next.Predictions, s.Predictions)
	copy(next.Results, s.Results)
	next.Predictions = append(next.Predictions, prediction)
	next.Results = append(next.Results, result)
	next.Accuracy = Accuracy(next.Predictions, next.Results)
	return next
}

func (s ModelState) Stats() ModelStats {
	stats := ModelStats{
		Name:             s.Name,
		TotalPredictions: len(s.Predictions),
		Accuracy:         s.Accuracy,
	}
	for i, prediction := range s.Predictions {
		switch prediction {
		case OutcomePlayer:
			stats.PlayerPredictions++
		case OutcomeBanker:
			stats.BankerPredictions++
		}
		if s.Results[i] != OutcomeTie {
			stats.ValidPredictions++
		}
	}
	if len(s.Predictions) > 0 {
		stats.LastPrediction = s.Predictions[len(s.Predictions)-1]
	}
	return stats
}

// Accuracy is the percentage of correct predictions over the rounds that did not end in a Tie.
// It is 0 when no such round exists.
func Accuracy(predictions []Outcome, results []Outcome) float64 {
	valid := 0
	correct := 0
	for i := 0; i < len(predictions) && i < len(results); i++ {
		if results[i] == OutcomeTie {
			continue
		}
		valid++
		if predictions[i] == results[i] {
			correct++
		}
	}
	if valid == 0 {
		return 0.0
	}
	return float64(correct) / float64(valid) * 100
}
