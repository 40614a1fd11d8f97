package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/mhngo/quiznest/internal/dto"
	"github.com/mhngo/quiznest/internal/model"
	"github.com/mhngo/quiznest/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuizService serves the browsable side of the question bank.
type QuizService interface {
	ListTopics() ([]string, error)
	// QuestionsForTopic returns questions whose topic matches exactly
	// (case-sensitive), in id order. An empty topic means the whole bank;
	// an unknown topic yields an empty slice, not an error.
	QuestionsForTopic(topic string) ([]dto.QuestionDTO, error)
}

type quizService struct {
	questionRepo repository.QuestionRepository
}

func NewQuizService(questionRepo repository.QuestionRepository) QuizService {
	return &quizService{questionRepo: questionRepo}
}

func (s *quizService) ListTopics() ([]string, error) {
	topics, err := s.questionRepo.DistinctTopics()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list distinct topics from repository")
		return nil, fmt.Errorf("error fetching topics: %w", err)
	}
	return topics, nil
}

func (s *quizService) QuestionsForTopic(topic string) ([]dto.QuestionDTO, error) {
	var (
		questions []model.Question
		err       error
	)
	if topic == "" {
		questions, err = s.questionRepo.FindAll()
	} else {
		questions, err = s.questionRepo.FindByTopic(topic)
	}
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to fetch questions from repository")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	dtos := make([]dto.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		var d dto.QuestionDTO
		if err := copier.Copy(&d, &q); err != nil {
			log.Error().Err(err).Uint("questionID", q.ID).Msg("Failed to copy Question model to DTO")
			return nil, fmt.Errorf("error preparing question response: %w", err)
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}
