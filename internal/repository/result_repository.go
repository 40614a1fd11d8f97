package repository

import (
	"github.com/mhngo/quiznest/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	Create(result *model.Result) error
	FindLatestByUser(userID string) (*model.Result, error)
	FindBestByUser(userID string) (*model.Result, error)
	FindBest() (*model.Result, error)
	FindAllByUser(userID string) ([]model.Result, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.Result) error {
	return r.db.Create(result).Error
}

// FindLatestByUser returns the most recently recorded result for a visitor.
// Ties on created_at fall back to id so the last insert always wins.
func (r *resultRepository) FindLatestByUser(userID string) (*model.Result, error) {
	var result model.Result
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindBestByUser(userID string) (*model.Result, error) {
	var result model.Result
	err := r.db.Where("user_id = ?", userID).
		Order("score DESC").
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindBest() (*model.Result, error) {
	var result model.Result
	err := r.db.Order("score DESC").First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindAllByUser(userID string) ([]model.Result, error) {
	var results []model.Result
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
