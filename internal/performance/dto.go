package performance

import (
	"github.com/taskmetrics/task-incentive/internal"
	"github.com/taskmetrics/task-incentive/internal/core/model"
)

type CreateDTO struct {
	EmployeeID int64   `json:"EmployeeID"`
	ManagerID  int64   `json:"ManagerID"`
	Month      string  `json:"Month"`
	Rating     float64 `json:"Rating"`
	Comments   *string `json:"Comments"`
}

func (d CreateDTO) Validate() error {
	if d.EmployeeID == 0 {
		return internal.NewValidationError("EmployeeID is required", internal.ErrCodeValidationFailed)
	}
	if d.ManagerID == 0 {
		return internal.NewValidationError("ManagerID is required", internal.ErrCodeValidationFailed)
	}
	if d.Month == "" {
		return internal.NewValidationError("Month is required", internal.ErrCodeValidationFailed)
	}
	if !model.ValidMonth(d.Month) {
		return internal.NewValidationError("Month must be in YYYY-MM format", internal.ErrCodeInvalidMonth)
	}
	if d.Rating == 0 {
		return internal.NewValidationError("Rating is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type UpdateDTO struct {
	EmployeeID *int64   `json:"EmployeeID"`
	ManagerID  *int64   `json:"ManagerID"`
	Month      *string  `json:"Month"`
	Rating     *float64 `json:"Rating"`
	Comments   *string  `json:"Comments"`
}

func (d UpdateDTO) Validate() error {
	if d.Month != nil && !model.ValidMonth(*d.Month) {
		return internal.NewValidationError("Month must be in YYYY-MM format", internal.ErrCodeInvalidMonth)
	}
	return nil
}
