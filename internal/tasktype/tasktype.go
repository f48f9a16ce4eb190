package tasktype

import (
	"github.com/taskmetrics/task-incentive/internal/core/model"
)

type ServiceAPI interface {
	GetAll() ([]*model.TaskType, error)
	GetByID(id int64) (*model.TaskType, error)
	Create(dto CreateDTO) (*model.TaskType, error)
	Update(id int64, dto UpdateDTO) (*model.TaskType, error)
	Delete(id int64) error
}

type RepositoryAPI interface {
	GetAll() ([]*model.TaskType, error)
	GetByID(id int64) (*model.TaskType, error)
	Create(tt *model.TaskType) error
	Update(id int64, fields map[string]interface{}) error
	Delete(id int64) error
}
