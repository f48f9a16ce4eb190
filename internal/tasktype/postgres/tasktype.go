package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/taskmetrics/task-incentive/internal/core/model"
	"github.com/taskmetrics/task-incentive/internal/tasktype"
)

type TaskTypeRepository struct {
	db *gorm.DB
}

func NewTaskTypeRepository(db *gorm.DB) tasktype.RepositoryAPI {
	return &TaskTypeRepository{db: db}
}

func (r *TaskTypeRepository) GetAll() ([]*model.TaskType, error) {
	var types []*model.TaskType
	err := r.db.Find(&types).Error
	return types, err
}

func (r *TaskTypeRepository) GetByID(id int64) (*model.TaskType, error) {
	var tt model.TaskType
	err := r.db.Where(`"TaskTypeID" = ?`, id).First(&tt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tt, nil
}

func (r *TaskTypeRepository) Create(tt *model.TaskType) error {
	return r.db.Create(tt).Error
}

func (r *TaskTypeRepository) Update(id int64, fields map[string]interface{}) error {
	return r.db.Model(&model.TaskType{}).
		Where(`"TaskTypeID" = ?`, id).
		Updates(fields).Error
}

func (r *TaskTypeRepository) Delete(id int64) error {
	return r.db.Delete(&model.TaskType{}, id).Error
}
