package taskrecord

import (
	"github.com/taskmetrics/task-incentive/internal"
	"github.com/taskmetrics/task-incentive/internal/core/model"
)

type CreateDTO struct {
	EmployeeID int64      `json:"EmployeeID"`
	TaskTypeID int64      `json:"TaskTypeID"`
	TaskDate   model.Date `json:"TaskDate"`
	Duration   float64    `json:"Duration"`
	Quantity   *int       `json:"Quantity"`
	Details    *string    `json:"Details"`
}

func (d CreateDTO) Validate() error {
	if d.EmployeeID == 0 {
		return internal.NewValidationError("EmployeeID is required", internal.ErrCodeValidationFailed)
	}
	if d.TaskTypeID == 0 {
		return internal.NewValidationError("TaskTypeID is required", internal.ErrCodeValidationFailed)
	}
	if d.TaskDate.IsZero() {
		return internal.NewValidationError("TaskDate is required", internal.ErrCodeValidationFailed)
	}
	if d.Duration <= 0 {
		return internal.NewValidationError("Duration must be greater than 0", internal.ErrCodeInvalidDuration)
	}
	return nil
}

type UpdateDTO struct {
	EmployeeID *int64      `json:"EmployeeID"`
	TaskTypeID *int64      `json:"TaskTypeID"`
	TaskDate   *model.Date `json:"TaskDate"`
	Duration   *float64    `json:"Duration"`
	Quantity   *int        `json:"Quantity"`
	Details    *string     `json:"Details"`
}

func (d UpdateDTO) Validate() error {
	if d.Duration != nil && *d.Duration <= 0 {
		return internal.NewValidationError("Duration must be greater than 0", internal.ErrCodeInvalidDuration)
	}
	if d.TaskDate != nil && d.TaskDate.IsZero() {
		return internal.NewValidationError("TaskDate cannot be empty", internal.ErrCodeValidationFailed)
	}
	return nil
}
