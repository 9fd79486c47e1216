package models

// GameStats summarises the result history
type GameStats struct {
	PlayerCount      int     `json:"playerCount"`
	BankerCount      int     `json:"bankerCount"`
	TieCount         int     `json:"tieCount"`
	TotalHands       int     `json:"totalHands"`
	PlayerPercentage float64 `json:"playerPercentage"`
	BankerPercentage float64 `json:"bankerPercentage"`
	TiePercentage    float64 `json:"tiePercentage"`
}

// SessionStats summarises the recorded rounds of a session
type SessionStats struct {
	SessionID          string  `json:"sessionId"`
	TotalRounds        int     `json:"totalRounds"`
	ValidRounds        int     `json:"validRounds"`
	CorrectPredictions int     `json:"correctPredictions"`
	Accuracy           float64 `json:"accuracy"`
	PlayerPredictions  int     `json:"playerPredictions"`
	BankerPredictions  int     `json:"bankerPredictions"`
	PlayerResults      int     `json:"playerResults"`
	BankerResults      int     `json:"bankerResults"`
	TieResults         int     `json:"tieResults"`
}
