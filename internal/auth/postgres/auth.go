package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/taskmetrics/task-incentive/internal/auth"
	"github.com/taskmetrics/task-incentive/internal/core/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) auth.RepositoryAPI {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUsername(username string) (*model.UserAccount, error) {
	var user model.UserAccount
	err := r.db.Where(`"Username" = ?`, username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *model.UserAccount) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) UpdateLastLogin(userID int64, at time.Time) error {
	return r.db.Model(&model.UserAccount{}).
		Where(`"UserID" = ?`, userID).
		Update("LastLogin", at).Error
}
