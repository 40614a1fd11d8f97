package dto

import "time"

// ScoreSummaryDTO carries the three numbers shown on the results page.
// Each defaults to 0 when no matching results exist.
type ScoreSummaryDTO struct {
	LatestScore  int  `json:"latest_score"`
	PersonalBest int  `json:"personal_best"`
	GlobalBest   int  `json:"global_best"`
	HasHistory   bool `json:"has_history"`
}

// ResultDTO is one entry in a visitor's submission history.
type ResultDTO struct {
	ID        uint      `json:"id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
