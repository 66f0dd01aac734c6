package entities

import "time"

// AnswerRecord is one answered question from a drill session
type AnswerRecord struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	PlayerID   string    `json:"player_id"`
	PlayerHand string    `json:"player_hand"`
	DealerCard string    `json:"dealer_card"`
	TableIndex string    `json:"table_index"` // "type:row,col"
	TableType  string    `json:"table_type"`
	Expected   string    `json:"expected"`
	Guess      string    `json:"guess"`
	Correct    bool      `json:"correct"`
	AnsweredAt time.Time `json:"answered_at"`
}

// CellStatistics aggregates a player's answers for one chart cell
type CellStatistics struct {
	PlayerID   string `json:"player_id"`
	TableIndex string `json:"table_index"`
	TableType  string `json:"table_type"`
	Attempts   int    `json:"attempts"`
	Wrong      int    `json:"wrong"`
}

// Accuracy returns the fraction of correct answers, or 0 with no attempts
func (c *CellStatistics) Accuracy() float64 {
	if c.Attempts == 0 {
		return 0
	}
	return float64(c.Attempts-c.Wrong) / float64(c.Attempts)
}

// ErrorRate returns the fraction of wrong answers, or 0 with no attempts
func (c *CellStatistics) ErrorRate() float64 {
	if c.Attempts == 0 {
		return 0
	}
	return float64(c.Wrong) / float64(c.Attempts)
}

// Add folds one answer into the cell counters
func (c *CellStatistics) Add(correct bool) {
	c.Attempts++
	if !correct {
		c.Wrong++
	}
}
