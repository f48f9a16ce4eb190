package taskreport

import (
	"github.com/taskmetrics/task-incentive/internal/core/model"
)

type ServiceAPI interface {
	GetAll() ([]*model.TaskReport, error)
	GetByID(id int64) (*model.TaskReport, error)
	GetByEmployee(employeeID int64) ([]*model.TaskReport, error)
	Create(dto CreateDTO) (*model.TaskReport, error)
	Update(id int64, dto UpdateDTO) (*model.TaskReport, error)
	Delete(id int64) error
	ExportPDF(id int64) ([]byte, error)
}

type RepositoryAPI interface {
	GetAll() ([]*model.TaskReport, error)
	GetByID(id int64) (*model.TaskReport, error)
	GetByEmployee(employeeID int64) ([]*model.TaskReport, error)
	Create(rep *model.TaskReport) error
	Update(id int64, fields map[string]interface{}) error
	Delete(id int64) error
}
