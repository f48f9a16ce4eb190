package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/taskmetrics/task-incentive/internal/core/model"
	"github.com/taskmetrics/task-incentive/internal/performance"
)

type PerformanceRatingRepository struct {
	db *gorm.DB
}

func NewPerformanceRatingRepository(db *gorm.DB) performance.RepositoryAPI {
	return &PerformanceRatingRepository{db: db}
}

func (r *PerformanceRatingRepository) GetAll() ([]*model.PerformanceRating, error) {
	var ratings []*model.PerformanceRating
	err := r.db.Preload("Employee").Preload("Manager").Find(&ratings).Error
	return ratings, err
}

func (r *PerformanceRatingRepository) GetByID(id int64) (*model.PerformanceRating, error) {
	var rating model.PerformanceRating
	err := r.db.Preload("Employee").Preload("Manager").
		Where(`"PerformanceRatingID" = ?`, id).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

func (r *PerformanceRatingRepository) Create(rating *model.PerformanceRating) error {
	return r.db.Create(rating).Error
}

func (r *PerformanceRatingRepository) Update(id int64, fields map[string]interface{}) error {
	return r.db.Model(&model.PerformanceRating{}).
		Where(`"PerformanceRatingID" = ?`, id).
		Updates(fields).Error
}

func (r *PerformanceRatingRepository) Delete(id int64) error {
	return r.db.Delete(&model.PerformanceRating{}, id).Error
}
