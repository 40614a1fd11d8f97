package repository

import (
	"github.com/mhngo/quiznest/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	CreateBatch(questions []model.Question) error
	FindAll() ([]model.Question, error)
	FindByTopic(topic string) ([]model.Question, error)
	DistinctTopics() ([]string, error)
	Count() (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) CreateBatch(questions []model.Question) error {
	return r.db.Create(&questions).Error
}

func (r *questionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByTopic(topic string) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("topic = ?", topic).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) DistinctTopics() ([]string, error) {
	var topics []string
	err := r.db.Model(&model.Question{}).
		Distinct("topic").
		Order("topic ASC").
		Pluck("topic", &topics).Error
	if err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *questionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Count(&count).Error
	return count, err
}
