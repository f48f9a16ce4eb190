package taskrecord

import (
	"github.com/taskmetrics/task-incentive/internal/core/model"
)

type ServiceAPI interface {
	GetAll() ([]*model.TaskRecord, error)
	GetByID(id int64) (*model.TaskRecord, error)
	GetByEmployee(employeeID int64) ([]EmployeeRecordResponse, error)
	Create(dto CreateDTO) (*model.TaskRecord, error)
	Update(id int64, dto UpdateDTO) (*model.TaskRecord, error)
	Delete(id int64) error
}

type RepositoryAPI interface {
	GetAll() ([]*model.TaskRecord, error)
	GetByID(id int64) (*model.TaskRecord, error)
	GetByEmployee(employeeID int64) ([]*model.TaskRecord, error)
	Create(rec *model.TaskRecord) error
	Update(id int64, fields map[string]interface{}) error
	Delete(id int64) error
}

// EmployeeRecordResponse is the per-employee listing shape: the record plus
// the trimmed task type, without re-embedding the employee the caller
// already knows.
type EmployeeRecordResponse struct {
	TaskRecordID int64              `json:"TaskRecordID"`
	EmployeeID   int64              `json:"EmployeeID"`
	TaskTypeID   int64              `json:"TaskTypeID"`
	TaskDate     model.Date         `json:"TaskDate"`
	Duration     float64            `json:"Duration"`
	Quantity     *int               `json:"Quantity"`
	Details      *string            `json:"Details"`
	TaskType     *model.TaskTypeRef `json:"taskType,omitempty"`
}

func toEmployeeRecordResponse(rec *model.TaskRecord) EmployeeRecordResponse {
	return EmployeeRecordResponse{
		TaskRecordID: rec.TaskRecordID,
		EmployeeID:   rec.EmployeeID,
		TaskTypeID:   rec.TaskTypeID,
		TaskDate:     rec.TaskDate,
		Duration:     rec.Duration,
		Quantity:     rec.Quantity,
		Details:      rec.Details,
		TaskType:     model.TaskTypeRefOf(rec.TaskType),
	}
}
