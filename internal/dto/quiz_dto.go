package dto

import "time"

// QuestionDTO is a question as shown to a visitor. The correct answer is
// deliberately absent; it must never leave the service layer.
type QuestionDTO struct {
	ID      uint   `json:"id"`
	Text    string `json:"text"`
	OptionA string `json:"option_a"`
	OptionB string `json:"option_b"`
	OptionC string `json:"option_c"`
	OptionD string `json:"option_d"`
	Topic   string `json:"topic"`
}

// AttemptSubmitDTO is the JSON body for an API quiz submission. Keys follow
// the form convention "q<id>" with the chosen letter as value.
type AttemptSubmitDTO struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

// SubmissionResultDTO reports the outcome of one recorded submission.
type SubmissionResultDTO struct {
	ResultID  uint      `json:"result_id"`
	Score     int       `json:"score"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
