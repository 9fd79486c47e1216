package services

import (
	"fmt"
	"sync"

	"gitlab.com/aoterocom/AOBaccarat/helpers"
	"gitlab.com/aoterocom/AOBaccarat/models"
)

// GameService keeps the append-only hand history of the table
type GameService struct {
	history      []models.Outcome
	historyMutex *sync.Mutex
}

func NewGameService() *GameService {
	return &GameService{
		historyMutex: &sync.Mutex{},
	}
}

func (gs *GameService) AddResult(result models.Outcome) error {
	if !result.IsValid() {
		return fmt.Errorf("%w: result must be P, B or T, got %q", models.ErrInvalidInput, string(result))
	}
	gs.historyMutex.Lock()
	gs.history = append(gs.history, result)
	gs.historyMutex.Unlock()
	return nil
}

// AddResults appends a whole run of results, or none of them if any entry is invalid
func (gs *GameService) AddResults(results []models.Outcome) error {
	if err := models.ValidateHistory(results); err != nil {
		return err
	}
	gs.historyMutex.Lock()
	gs.history = append(gs.history, results...)
	gs.historyMutex.Unlock()
	return nil
}

// History returns a copy of the last limit results, or all of them when limit <= 0
func (gs *GameService) History(limit int) []models.Outcome {
	gs.historyMutex.Lock()
	defer gs.historyMutex.Unlock()
	start := 0
	if limit > 0 && limit < len(gs.history) {
		start = len(gs.history) - limit
	}
	history := make([]models.Outcome, len(gs.history)-start)
	copy(history, gs.history[start:])
	return history
}

func (gs *GameService) Stats() models.GameStats {
	gs.historyMutex.Lock()
	defer gs.historyMutex.Unlock()

	stats := models.GameStats{TotalHands: len(gs.history)}
	for _, result := range gs.history {
		switch result {
		case models.OutcomePlayer:
			stats.PlayerCount++
		case models.OutcomeBanker:
			stats.BankerCount++
		case models.OutcomeTie:
			stats.TieCount++
		}
	}
	stats.PlayerPercentage = helpers.Percentage(stats.PlayerCount, stats.TotalHands)
	stats.BankerPercentage = helpers.Percentage(stats.BankerCount, stats.TotalHands)
	stats.TiePercentage = helpers.Percentage(stats.TieCount, stats.TotalHands)
	return stats
}

func (gs *GameService) Reset() {
	gs.historyMutex.Lock()
	gs.history = nil
	gs.historyMutex.Unlock()
}
