package database

import (
	"time"

	"github.com/sdcoffey/big"
	"gorm.io/gorm"
)

// Session groups the rounds of one tracker session
type Session struct {
	gorm.Model
	SessionID string  `json:"sessionId" gorm:"uniqueIndex;size:36"`
	Rounds    []Round `gorm:"foreignKey:SessionRef"`
}

type Round struct {
	gorm.Model
	SessionRef uint
	Timestamp  time.Time   `json:"timestamp"`
	Prediction string      `json:"prediction" gorm:"size:1"`
	Result     string      `json:"result" gorm:"size:1"`
	Confidence big.Decimal `json:"confidence"`
	Correct    bool        `json:"correct"`
}
