package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/taskmetrics/task-incentive/internal/core/model"
	"github.com/taskmetrics/task-incentive/internal/incentive"
)

type IncentivePaymentRepository struct {
	db *gorm.DB
}

func NewIncentivePaymentRepository(db *gorm.DB) incentive.RepositoryAPI {
	return &IncentivePaymentRepository{db: db}
}

func (r *IncentivePaymentRepository) GetAll() ([]*model.IncentivePayment, error) {
	var payments []*model.IncentivePayment
	err := r.db.Preload("Employee").Find(&payments).Error
	return payments, err
}

func (r *IncentivePaymentRepository) GetByID(id int64) (*model.IncentivePayment, error) {
	var payment model.IncentivePayment
	err := r.db.Preload("Employee").
		Where(`"IncentivePaymentID" = ?`, id).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *IncentivePaymentRepository) Create(payment *model.IncentivePayment) error {
	return r.db.Create(payment).Error
}

func (r *IncentivePaymentRepository) Update(id int64, fields map[string]interface{}) error {
	return r.db.Model(&model.IncentivePayment{}).
		Where(`"IncentivePaymentID" = ?`, id).
		Updates(fields).Error
}

func (r *IncentivePaymentRepository) Delete(id int64) error {
	return r.db.Delete(&model.IncentivePayment{}, id).Error
}
