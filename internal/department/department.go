package department

import (
	"github.com/taskmetrics/task-incentive/internal/core/model"
)

// ServiceAPI is the department CRUD surface.
type ServiceAPI interface {
	GetAll() ([]Response, error)
	GetByID(id int64) (*Response, error)
	Create(dto CreateDTO) (*Response, error)
	Update(id int64, dto UpdateDTO) (*Response, error)
	Delete(id int64) error
}

// RepositoryAPI is the persistence surface. Lookups return nil when no row
// matches.
type RepositoryAPI interface {
	GetAll() ([]*model.Department, error)
	GetByID(id int64) (*model.Department, error)
	Create(dept *model.Department) error
	Update(id int64, fields map[string]interface{}) error
	Delete(id int64) error
}

// Response embeds the manager as the trimmed {EmployeeID, Name} shape the
// admin pages render.
type Response struct {
	DepartmentID int64              `json:"DepartmentID"`
	Name         string             `json:"Name"`
	ManagerID    *int64             `json:"ManagerID"`
	Manager      *model.EmployeeRef `json:"manager,omitempty"`
}

func toResponse(d *model.Department) *Response {
	return &Response{
		DepartmentID: d.DepartmentID,
		Name:         d.Name,
		ManagerID:    d.ManagerID,
		Manager:      model.RefOf(d.Manager),
	}
}
