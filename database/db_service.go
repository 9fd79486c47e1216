package database

import (
	"errors"
	"fmt"

	"github.com/sdcoffey/big"
	database "gitlab.com/aoterocom/AOBaccarat/database/models"
	"gitlab.com/aoterocom/AOBaccarat/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type DBService struct {
	DB *gorm.DB
}

func NewDBService(dbHost string, dbPort string, dbName string, dbUser string, dbPass string) (*DBService, error) {
	dsn := dbUser + ":" + dbPass + "@tcp(" + dbHost + ":" + dbPort + ")/" + dbName + "?charset=utf8mb4&parseTime=True&loc=Local"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	dbs := &DBService{
		DB: db,
	}

	err = dbs.DB.AutoMigrate(&database.Session{}, &database.Round{})
	if err != nil {
		return nil, err
	}

	return dbs, nil
}

// SaveRound stores the round under its session, creating the session row on first use
func (dbs *DBService) SaveRound(sessionID string, record models.PredictionRecord) error {
	return dbs.DB.Transaction(func(tx *gorm.DB) error {
		session := database.Session{SessionID: sessionID}
		if err := tx.Where(database.Session{SessionID: sessionID}).FirstOrCreate(&session).Error; err != nil {
			return fmt.Errorf("session %s: %w", sessionID, err)
		}
		round := ToDBRound(record)
		round.SessionRef = session.ID
		return tx.Create(&round).Error
	})
}

func (dbs *DBService) LoadSession(sessionID string) ([]models.PredictionRecord, error) {
	var session database.Session
	err := dbs.DB.Preload("Rounds", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	}).Where("session_id = ?", sessionID).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", models.ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return nil, err
	}

	records := make([]models.PredictionRecord, 0, len(session.Rounds))
	for _, round := range session.Rounds {
		records = append(records, FromDBRound(round))
	}
	return records, nil
}

func ToDBRound(record models.PredictionRecord) database.Round {
	return database.Round{
		Timestamp:  record.Timestamp,
		Prediction: string(record.Prediction),
		Result:     string(record.Actual),
		Confidence: big.NewDecimal(record.Confidence),
		Correct:    record.Correct,
	}
}

func FromDBRound(round database.Round) models.PredictionRecord {
	return models.PredictionRecord{
		Timestamp:  round.Timestamp,
		Prediction: models.Outcome(round.Prediction),
		Actual:     models.Outcome(round.Result),
		Confidence: round.Confidence.Float(),
		Correct:    round.Correct,
	}
}
