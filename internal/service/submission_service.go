package service

import (
	"fmt"

	"github.com/mhngo/quiznest/internal/dto"
	"github.com/mhngo/quiznest/internal/model"
	"github.com/mhngo/quiznest/internal/repository"
	"github.com/rs/zerolog/log"
)

// SubmissionService orchestrates a quiz submission: grade the answers and
// append one Result row for the visitor.
type SubmissionService interface {
	Submit(userID string, answers map[string]string) (*dto.SubmissionResultDTO, error)
}

type submissionService struct {
	questionRepo repository.QuestionRepository
	resultRepo   repository.ResultRepository
	scoring      ScoringService
}

func NewSubmissionService(
	questionRepo repository.QuestionRepository,
	resultRepo repository.ResultRepository,
	scoring ScoringService,
) SubmissionService {
	return &submissionService{
		questionRepo: questionRepo,
		resultRepo:   resultRepo,
		scoring:      scoring,
	}
}

// Submit grades the answers against the entire question bank, regardless of
// which topic the visitor was quizzed on — unanswered questions from other
// topics simply score nothing. The recorded Result is a single atomic insert.
func (s *submissionService) Submit(userID string, answers map[string]string) (*dto.SubmissionResultDTO, error) {
	questions, err := s.questionRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Submit: failed to load question bank")
		return nil, fmt.Errorf("error loading questions for scoring: %w", err)
	}

	score := s.scoring.Score(questions, answers)

	result := model.Result{
		Score:  score,
		UserID: userID,
	}
	if err := s.resultRepo.Create(&result); err != nil {
		log.Error().Err(err).Str("userID", userID).Int("score", score).Msg("Submit: failed to record result")
		return nil, fmt.Errorf("error recording result: %w", err)
	}

	log.Info().Str("userID", userID).Int("score", score).Uint("resultID", result.ID).Msg("Recorded quiz submission")
	return &dto.SubmissionResultDTO{
		ResultID:  result.ID,
		Score:     result.Score,
		UserID:    result.UserID,
		CreatedAt: result.CreatedAt,
	}, nil
}
