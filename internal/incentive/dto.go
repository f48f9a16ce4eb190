package incentive

import (
	"github.com/taskmetrics/task-incentive/internal"
	"github.com/taskmetrics/task-incentive/internal/core/model"
)

type CreateDTO struct {
	EmployeeID     int64      `json:"EmployeeID"`
	PaymentMonth   string     `json:"PaymentMonth"`
	PaymentDate    model.Date `json:"PaymentDate"`
	IncentiveType  string     `json:"IncentiveType"`
	Amount         float64    `json:"Amount"`
	ApprovalStatus string     `json:"ApprovalStatus"`
}

func (d CreateDTO) Validate() error {
	if d.EmployeeID == 0 {
		return internal.NewValidationError("EmployeeID is required", internal.ErrCodeValidationFailed)
	}
	if d.PaymentMonth == "" {
		return internal.NewValidationError("PaymentMonth is required", internal.ErrCodeValidationFailed)
	}
	if !model.ValidMonth(d.PaymentMonth) {
		return internal.NewValidationError("PaymentMonth must be in YYYY-MM format", internal.ErrCodeInvalidMonth)
	}
	if d.PaymentDate.IsZero() {
		return internal.NewValidationError("PaymentDate is required", internal.ErrCodeValidationFailed)
	}
	if d.IncentiveType == "" {
		return internal.NewValidationError("IncentiveType is required", internal.ErrCodeValidationFailed)
	}
	if d.Amount <= 0 {
		return internal.NewValidationError("Amount must be greater than 0", internal.ErrCodeValidationFailed)
	}
	if d.ApprovalStatus == "" {
		return internal.NewValidationError("ApprovalStatus is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type UpdateDTO struct {
	EmployeeID     *int64      `json:"EmployeeID"`
	PaymentMonth   *string     `json:"PaymentMonth"`
	PaymentDate    *model.Date `json:"PaymentDate"`
	IncentiveType  *string     `json:"IncentiveType"`
	Amount         *float64    `json:"Amount"`
	ApprovalStatus *string     `json:"ApprovalStatus"`
}

func (d UpdateDTO) Validate() error {
	if d.PaymentMonth != nil && !model.ValidMonth(*d.PaymentMonth) {
		return internal.NewValidationError("PaymentMonth must be in YYYY-MM format", internal.ErrCodeInvalidMonth)
	}
	if d.Amount != nil && *d.Amount <= 0 {
		return internal.NewValidationError("Amount must be greater than 0", internal.ErrCodeValidationFailed)
	}
	return nil
}
