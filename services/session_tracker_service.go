package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gitlab.com/aoterocom/AOBaccarat/helpers"
	"gitlab.com/aoterocom/AOBaccarat/interfaces"
	"gitlab.com/aoterocom/AOBaccarat/models"
)

// SessionTrackerService records predictions against actual outcomes for one session
type SessionTrackerService struct {
	sessionID    string
	records      []models.PredictionRecord
	recordsMutex *sync.Mutex

	sessionStore interfaces.SessionStore
	now          func() time.Time
}

// NewSessionTrackerService starts a fresh session. sessionStore may be nil to keep the session in memory only.
func NewSessionTrackerService(sessionStore interfaces.SessionStore) *SessionTrackerService {
	return &SessionTrackerService{
		sessionID:    uuid.NewString(),
		recordsMutex: &sync.Mutex{},
		sessionStore: sessionStore,
		now:          time.Now,
	}
}

func (sts *SessionTrackerService) SessionID() string {
	sts.recordsMutex.Lock()
	defer sts.recordsMutex.Unlock()
	return sts.sessionID
}

// RecordRound appends one round. The in-memory record is kept even when persisting it fails;
// the persistence error is returned to the caller.
func (sts *SessionTrackerService) RecordRound(prediction models.Outcome, actual models.Outcome, confidence float64) (models.PredictionRecord, error) {
	record, sessionID, err := sts.appendRound(prediction, actual, confidence)
	if err != nil {
		return models.PredictionRecord{}, err
	}
	return record, sts.saveRound(sessionID, record)
}

// appendRound records the round in memory and returns the session it belongs to
func (sts *SessionTrackerService) appendRound(prediction models.Outcome, actual models.Outcome, confidence float64) (models.PredictionRecord, string, error) {
	if prediction != models.OutcomePlayer && prediction != models.OutcomeBanker {
		return models.PredictionRecord{}, "", fmt.Errorf("%w: prediction must be P or B, got %q", models.ErrInvalidInput, string(prediction))
	}
	if !actual.IsValid() {
		return models.PredictionRecord{}, "", fmt.Errorf("%w: result must be P, B or T, got %q", models.ErrInvalidInput, string(actual))
	}

	sts.recordsMutex.Lock()
	defer sts.recordsMutex.Unlock()
	record := models.NewPredictionRecord(sts.now(), prediction, actual, confidence)
	sts.records = append(sts.records, record)
	return record, sts.sessionID, nil
}

func (sts *SessionTrackerService) saveRound(sessionID string, record models.PredictionRecord) error {
	if sts.sessionStore == nil {
		return nil
	}
	if err := sts.sessionStore.SaveRound(sessionID, record); err != nil {
		helpers.Logger.Errorln(fmt.Sprintf("session %s: saving round failed: %s", sessionID, err.Error()))
		return fmt.Errorf("saving round: %w", err)
	}
	return nil
}

func (sts *SessionTrackerService) Stats() models.SessionStats {
	sts.recordsMutex.Lock()
	defer sts.recordsMutex.Unlock()

	stats := models.SessionStats{
		SessionID:   sts.sessionID,
		TotalRounds: len(sts.records),
	}
	for _, record := range sts.records {
		switch record.Prediction {
		case models.OutcomePlayer:
			stats.PlayerPredictions++
		case models.OutcomeBanker:
			stats.BankerPredictions++
		}
		switch record.Actual {
		case models.OutcomePlayer:
			stats.PlayerResults++
		case models.OutcomeBanker:
			stats.BankerResults++
		case models.OutcomeTie:
			stats.TieResults++
		}
		if record.Actual != models.OutcomeTie {
			stats.ValidRounds++
			if record.Correct {
				stats.CorrectPredictions++
			}
		}
	}
	stats.Accuracy = helpers.Percentage(stats.CorrectPredictions, stats.ValidRounds)
	return stats
}

func (sts *SessionTrackerService) Records() []models.PredictionRecord {
	sts.recordsMutex.Lock()
	defer sts.recordsMutex.Unlock()
	records := make([]models.PredictionRecord, len(sts.records))
	copy(records, sts.records)
	return records
}

// Predictions returns the last limit predictions, all of them when limit <= 0
func (sts *SessionTrackerService) Predictions(limit int) []models.Outcome {
	records := lastRecords(sts.Records(), limit)
	predictions := make([]models.Outcome, len(records))
	for i, record := range records {
		predictions[i] = record.Prediction
	}
	return predictions
}

// Results returns the last limit actual outcomes, all of them when limit <= 0
func (sts *SessionTrackerService) Results(limit int) []models.Outcome {
	records := lastRecords(sts.Records(), limit)
	results := make([]models.Outcome, len(records))
	for i, record := range records {
		results[i] = record.Actual
	}
	return results
}

// Load replaces the tracked session with a persisted one
func (sts *SessionTrackerService) Load(sessionID string) error {
	if sts.sessionStore == nil {
		return fmt.Errorf("no session store configured")
	}
	records, err := sts.sessionStore.LoadSession(sessionID)
	if err != nil {
		return err
	}
	sts.recordsMutex.Lock()
	sts.sessionID = sessionID
	sts.records = records
	sts.recordsMutex.Unlock()
	return nil
}

// Clear drops the recorded rounds and starts a new session id
func (sts *SessionTrackerService) Clear() {
	sts.recordsMutex.Lock()
	sts.records = nil
	sts.sessionID = uuid.NewString()
	sts.recordsMutex.Unlock()
}

func lastRecords(records []models.PredictionRecord, limit int) []models.PredictionRecord {
	if limit > 0 && limit < len(records) {
		return records[len(records)-limit:]
	}
	return records
}
