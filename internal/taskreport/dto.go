package taskreport

import (
	"time"

	"github.com/taskmetrics/task-incentive/internal"
	"github.com/taskmetrics/task-incentive/internal/core/model"
)

type CreateDTO struct {
	EmployeeID     int64     `json:"EmployeeID"`
	ReportMonth    string    `json:"ReportMonth"`
	SubmissionDate time.Time `json:"SubmissionDate"`
	TotalHours     *float64  `json:"TotalHours"`
	TotalTask      *string   `json:"TotalTask"`
}

func (d CreateDTO) Validate() error {
	if d.EmployeeID == 0 {
		return internal.NewValidationError("EmployeeID is required", internal.ErrCodeValidationFailed)
	}
	if d.ReportMonth == "" {
		return internal.NewValidationError("ReportMonth is required", internal.ErrCodeValidationFailed)
	}
	if !model.ValidMonth(d.ReportMonth) {
		return internal.NewValidationError("ReportMonth must be in YYYY-MM format", internal.ErrCodeInvalidMonth)
	}
	return nil
}

type UpdateDTO struct {
	EmployeeID     *int64     `json:"EmployeeID"`
	ReportMonth    *string    `json:"ReportMonth"`
	SubmissionDate *time.Time `json:"SubmissionDate"`
	TotalHours     *float64   `json:"TotalHours"`
	TotalTask      *string    `json:"TotalTask"`
}

func (d UpdateDTO) Validate() error {
	if d.ReportMonth != nil && !model.ValidMonth(*d.ReportMonth) {
		return internal.NewValidationError("ReportMonth must be in YYYY-MM format", internal.ErrCodeInvalidMonth)
	}
	return nil
}
