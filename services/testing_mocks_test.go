package services

import (
	"errors"
	"fmt"
	"sync"

	"gitlab.com/aoterocom/AOBaccarat/models"
)

var errStoreDown = errors.New("store down")

type memorySessionStore struct {
	mutex    sync.Mutex
	sessions map[string][]models.PredictionRecord
	failing  bool
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string][]models.PredictionRecord)}
}

func (m *memorySessionStore) SaveRound(sessionID string, record models.PredictionRecord) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.failing {
		return errStoreDown
	}
	m.sessions[sessionID] = append(m.sessions[sessionID], record)
	return nil
}

func (m *memorySessionStore) LoadSession(sessionID string) ([]models.PredictionRecord, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	records, ok := m.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrSessionNotFound, sessionID)
	}
	return append([]models.PredictionRecord(nil), records...), nil
}

// fixedPredictor always calls the same side
type fixedPredictor struct {
	name    string
	outcome models.Outcome
}

func (f fixedPredictor) Name() string {
	return f.name
}

func (f fixedPredictor) Predict(grid models.Grid, history []models.Outcome) models.Prediction {
	return models.Prediction{Model: f.name, Outcome: f.outcome, Confidence: 60}
}

// signalingPredictor reports on called every time it is asked for a prediction
type signalingPredictor struct {
	fixedPredictor
	called chan struct{}
}

func (s signalingPredictor) Predict(grid models.Grid, history []models.Outcome) models.Prediction {
	select {
	case s.called <- struct{}{}:
	default:
	}
	return s.fixedPredictor.Predict(grid, history)
}
