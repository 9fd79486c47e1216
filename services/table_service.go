package services

import (
	"fmt"
	"sync"

	"gitlab.com/aoterocom/AOBaccarat/helpers"
	"gitlab.com/aoterocom/AOBaccarat/interfaces"
	"gitlab.com/aoterocom/AOBaccarat/models"
)

// TableService owns the grid and the hand history of one table and feeds both to every
// configured predictor. The tracker follows the primary predictor.
// roundMutex guards the pending predictions, the model states, the history and the tracker as one unit.
type TableService struct {
	grid       models.Grid
	gridMutex  *sync.Mutex
	roundMutex *sync.Mutex

	predictors   []interfaces.Predictor
	primaryModel string
	modelStates  map[string]models.ModelState
	pending      map[string]models.Prediction

	gameService    *GameService
	sessionTracker *SessionTrackerService
}

// TableSnapshot is the state of the table between two rounds
type TableSnapshot struct {
	Grid    models.Grid
	History []models.Outcome
	Game    models.GameStats
	Session models.SessionStats
	Models  []models.ModelStats
	Pending []models.Prediction
}

func NewTableService(predictors []interfaces.Predictor, primaryModel string, gameService *GameService,
	sessionTracker *SessionTrackerService) (*TableService, error) {

	if len(predictors) == 0 {
		return nil, fmt.Errorf("table needs at least one predictor")
	}

	ts := &TableService{
		gridMutex:      &sync.Mutex{},
		roundMutex:     &sync.Mutex{},
		predictors:     predictors,
		primaryModel:   predictors[0].Name(),
		modelStates:    make(map[string]models.ModelState),
		pending:        make(map[string]models.Prediction),
		gameService:    gameService,
		sessionTracker: sessionTracker,
	}

	found := primaryModel == ""
	for _, predictor := range predictors {
		ts.modelStates[predictor.Name()] = models.NewModelState(predictor.Name())
		if predictor.Name() == primaryModel {
			ts.primaryModel = primaryModel
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("primary model %s is not among the configured models", primaryModel)
	}
	return ts, nil
}

func (ts *TableService) PrimaryModel() string {
	return ts.primaryModel
}

func (ts *TableService) Grid() models.Grid {
	ts.gridMutex.Lock()
	defer ts.gridMutex.Unlock()
	return ts.grid
}

func (ts *TableService) SetGrid(grid models.Grid) error {
	if err := grid.Validate(); err != nil {
		return err
	}
	ts.gridMutex.Lock()
	ts.grid = grid
	ts.gridMutex.Unlock()
	return nil
}

func (ts *TableService) SetCell(row int, col int, outcome models.Outcome) error {
	if row < 0 || row >= models.GridSize || col < 0 || col >= models.GridSize {
		return fmt.Errorf("%w: cell (%d,%d) is outside the grid", models.ErrInvalidInput, row, col)
	}
	if outcome != models.OutcomePlayer && outcome != models.OutcomeBanker && outcome != models.OutcomeEmpty {
		return fmt.Errorf("%w: grid cells take P, B or empty, got %q", models.ErrInvalidInput, string(outcome))
	}
	ts.gridMutex.Lock()
	ts.grid[row][col] = outcome
	ts.gridMutex.Unlock()
	return nil
}

// CycleCell rotates a cell through empty, Player, Banker and back to empty
func (ts *TableService) CycleCell(row int, col int) (models.Outcome, error) {
	current := ts.Grid()
	if row < 0 || row >= models.GridSize || col < 0 || col >= models.GridSize {
		return models.OutcomeEmpty, fmt.Errorf("%w: cell (%d,%d) is outside the grid", models.ErrInvalidInput, row, col)
	}
	next := models.OutcomeEmpty
	switch current[row][col] {
	case models.OutcomeEmpty:
		next = models.OutcomePlayer
	case models.OutcomePlayer:
		next = models.OutcomeBanker
	}
	return next, ts.SetCell(row, col, next)
}

func (ts *TableService) ClearGrid() {
	ts.gridMutex.Lock()
	ts.grid = models.Grid{}
	ts.gridMutex.Unlock()
}

func (ts *TableService) History(limit int) []models.Outcome {
	ts.roundMutex.Lock()
	defer ts.roundMutex.Unlock()
	return ts.gameService.History(limit)
}

// LoadHistory appends hands played before the table was opened. They carry no predictions.
func (ts *TableService) LoadHistory(history []models.Outcome) error {
	ts.roundMutex.Lock()
	defer ts.roundMutex.Unlock()
	return ts.gameService.AddResults(history)
}

func (ts *TableService) GameStats() models.GameStats {
	ts.roundMutex.Lock()
	defer ts.roundMutex.Unlock()
	return ts.gameService.Stats()
}

func (ts *TableService) SessionStats() models.SessionStats {
	ts.roundMutex.Lock()
	defer ts.roundMutex.Unlock()
	return ts.sessionTracker.Stats()
}

// Snapshot reads everything the dashboard shows without interleaving with a round
func (ts *TableService) Snapshot() TableSnapshot {
	ts.roundMutex.Lock()
	defer ts.roundMutex.Unlock()
	return TableSnapshot{
		Grid:    ts.Grid(),
		History: ts.gameService.History(0),
		Game:    ts.gameService.Stats(),
		Session: ts.sessionTracker.Stats(),
		Models:  ts.modelStatsLocked(),
		Pending: ts.pendingLocked(),
	}
}

func (ts *TableService) SessionTracker() *SessionTrackerService {
	return ts.sessionTracker
}

// Predict runs every predictor on a snapshot of the grid and history and keeps the results as the
// pending predictions of the next round
func (ts *TableService) Predict() []models.Prediction {
	ts.roundMutex.Lock()
	defer ts.roundMutex.Unlock()
	return ts.predictLocked()
}

func (ts *TableService) predictLocked() []models.Prediction {
	grid := ts.Grid()
	history := ts.gameService.History(0)

	predictions := make([]models.Prediction, 0, len(ts.predictors))
	for _, predictor := range ts.predictors {
		prediction := predictor.Predict(grid, history)
		ts.pending[predictor.Name()] = prediction
		predictions = append(predictions, prediction)
		helpers.Logger.Debugln(fmt.Sprintf("%s predicts %s (%.1f%%)", prediction.Model, prediction.Outcome.Name(), prediction.Confidence))
	}
	return predictions
}

// Pending returns the predictions waiting for the next outcome, in predictor order
func (ts *TableService) Pending() []models.Prediction {
	ts.roundMutex.Lock()
	defer ts.roundMutex.Unlock()
	return ts.pendingLocked()
}

func (ts *TableService) pendingLocked() []models.Prediction {
	var predictions []models.Prediction
	for _, predictor := range ts.predictors {
		if prediction, ok := ts.pending[predictor.Name()]; ok {
			predictions = append(predictions, prediction)
		}
	}
	return predictions
}

// RecordOutcome closes the round: every model state, the history and the tracker get the outcome
// under the round lock, including the store write, so rounds reach the store in history order.
// If no prediction was asked for, one is made first from the state before the outcome.
func (ts *TableService) RecordOutcome(actual models.Outcome) (models.PredictionRecord, error) {
	if !actual.IsValid() {
		return models.PredictionRecord{}, fmt.Errorf("%w: result must be P, B or T, got %q", models.ErrInvalidInput, string(actual))
	}

	ts.roundMutex.Lock()
	defer ts.roundMutex.Unlock()

	if len(ts.pending) == 0 {
		ts.predictLocked()
	}
	primary := ts.pending[ts.primaryModel]

	record, sessionID, err := ts.sessionTracker.appendRound(primary.Outcome, actual, primary.Confidence)
	if err != nil {
		return models.PredictionRecord{}, err
	}
	if err := ts.gameService.AddResult(actual); err != nil {
		return models.PredictionRecord{}, err
	}
	for name, prediction := range ts.pending {
		ts.modelStates[name] = ts.modelStates[name].RecordAndRecompute(prediction.Outcome, actual)
	}
	ts.pending = make(map[string]models.Prediction)

	helpers.Logger.Infoln(fmt.Sprintf("%s: predicted %s, result %s", ts.primaryModel, primary.Outcome.Name(), actual.Name()))
	return record, ts.sessionTracker.saveRound(sessionID, record)
}

func (ts *TableService) ModelStats() []models.ModelStats {
	ts.roundMutex.Lock()
	defer ts.roundMutex.Unlock()
	return ts.modelStatsLocked()
}

func (ts *TableService) modelStatsLocked() []models.ModelStats {
	stats := make([]models.ModelStats, 0, len(ts.predictors))
	for _, predictor := range ts.predictors {
		stats = append(stats, ts.modelStates[predictor.Name()].Stats())
	}
	return stats
}

func (ts *TableService) Reset() {
	ts.roundMutex.Lock()
	defer ts.roundMutex.Unlock()
	for _, predictor := range ts.predictors {
		ts.modelStates[predictor.Name()] = models.NewModelState(predictor.Name())
	}
	ts.pending = make(map[string]models.Prediction)
	ts.gameService.Reset()
	ts.sessionTracker.Clear()
	ts.ClearGrid()
}
