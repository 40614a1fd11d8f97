package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/mhngo/quiznest/internal/dto"
	"github.com/mhngo/quiznest/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ResultService aggregates recorded scores. All three summary numbers are
// recomputed from the full result log on every call; the log is small and
// append-only, so nothing is cached or maintained incrementally.
type ResultService interface {
	Summarize(userID string) (*dto.ScoreSummaryDTO, error)
	History(userID string) ([]dto.ResultDTO, error)
}

type resultService struct {
	resultRepo repository.ResultRepository
}

func NewResultService(resultRepo repository.ResultRepository) ResultService {
	return &resultService{resultRepo: resultRepo}
}

// Summarize computes the visitor's latest score, their personal best, and the
// global best across all visitors. A missing row is not an error: each number
// independently defaults to 0.
func (s *resultService) Summarize(userID string) (*dto.ScoreSummaryDTO, error) {
	summary := &dto.ScoreSummaryDTO{}

	latest, err := s.resultRepo.FindLatestByUser(userID)
	switch {
	case err == nil:
		summary.LatestScore = latest.Score
		summary.HasHistory = true
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Error().Err(err).Str("userID", userID).Msg("Failed to fetch latest result")
		return nil, fmt.Errorf("error fetching latest result: %w", err)
	}

	personalBest, err := s.resultRepo.FindBestByUser(userID)
	switch {
	case err == nil:
		summary.PersonalBest = personalBest.Score
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Error().Err(err).Str("userID", userID).Msg("Failed to fetch personal best result")
		return nil, fmt.Errorf("error fetching personal best: %w", err)
	}

	globalBest, err := s.resultRepo.FindBest()
	switch {
	case err == nil:
		summary.GlobalBest = globalBest.Score
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Error().Err(err).Msg("Failed to fetch global best result")
		return nil, fmt.Errorf("error fetching global best: %w", err)
	}

	return summary, nil
}

// History lists the visitor's recorded submissions, newest first.
func (s *resultService) History(userID string) ([]dto.ResultDTO, error) {
	results, err := s.resultRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to fetch result history")
		return nil, fmt.Errorf("error fetching result history: %w", err)
	}

	dtos := make([]dto.ResultDTO, 0, len(results))
	for _, r := range results {
		var d dto.ResultDTO
		if err := copier.Copy(&d, &r); err != nil {
			log.Error().Err(err).Uint("resultID", r.ID).Msg("Failed to copy Result model to DTO")
			return nil, fmt.Errorf("error preparing result history response: %w", err)
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}
