package employee

import (
	"github.com/taskmetrics/task-incentive/internal/core/model"
)

// ServiceAPI is the employee CRUD surface. Rows come back with the
// department and owning account expanded; the account's password hash is
// never serialized.
type ServiceAPI interface {
	GetAll() ([]*model.Employee, error)
	GetByID(id int64) (*model.Employee, error)
	GetByUserID(userID int64) (*model.Employee, error)
	Create(dto CreateDTO) (*model.Employee, error)
	Update(id int64, dto UpdateDTO) (*model.Employee, error)
	Delete(id int64) error
}

type RepositoryAPI interface {
	GetAll() ([]*model.Employee, error)
	GetByID(id int64) (*model.Employee, error)
	GetByUserID(userID int64) (*model.Employee, error)
	Create(emp *model.Employee) error
	Update(id int64, fields map[string]interface{}) error
	Delete(id int64) error
}
