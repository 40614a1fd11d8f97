package service

import (
	"strconv"

	"github.com/mhngo/quiznest/internal/model"
)

// ScoringService grades a submission against the question bank.
type ScoringService interface {
	// Score counts exact matches between submitted letters and correct
	// answers. Answers are keyed "q<id>". Missing or unrelated keys are
	// ignored; submitted values are compared as-is, case-sensitively, so an
	// invalid letter simply never matches. Pure: no side effects, same
	// inputs always give the same count, which lies in [0, len(questions)].
	Score(questions []model.Question, answers map[string]string) int
}

type scoringService struct{}

func NewScoringService() ScoringService {
	return &scoringService{}
}

// AnswerKey builds the form/JSON key for a question id ("q7" for id 7).
func AnswerKey(id uint) string {
	return "q" + strconv.FormatUint(uint64(id), 10)
}

func (s *scoringService) Score(questions []model.Question, answers map[string]string) int {
	score := 0
	for _, q := range questions {
		if answers[AnswerKey(q.ID)] == q.CorrectAnswer {
			score++
		}
	}
	return score
}
