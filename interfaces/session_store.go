package interfaces

import "gitlab.com/aoterocom/AOBaccarat/models"

type SessionStore interface {
	SaveRound(sessionID string, record models.PredictionRecord) error
	LoadSession(sessionID string) ([]models.PredictionRecord, error)
}
