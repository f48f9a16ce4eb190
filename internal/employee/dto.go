package employee

import "github.com/taskmetrics/task-incentive/internal"

// CreateDTO carries the allow-listed employee fields. EmployeeID is
// assigned by HR and supplied by the caller, not generated.
type CreateDTO struct {
	EmployeeID      int64   `json:"EmployeeID"`
	Name            string  `json:"Name"`
	Email           *string `json:"Email"`
	ContractType    string  `json:"contractType"`
	BankAccountInfo *string `json:"BankAccountInfo"`
	DepartmentID    *int64  `json:"DepartmentID"`
	UserID          int64   `json:"UserID"`
}

func (d CreateDTO) Validate() error {
	if d.EmployeeID == 0 {
		return internal.NewValidationError("EmployeeID is required", internal.ErrCodeValidationFailed)
	}
	if d.Name == "" {
		return internal.NewValidationError("Name is required", internal.ErrCodeValidationFailed)
	}
	if d.ContractType == "" {
		return internal.NewValidationError("contractType is required", internal.ErrCodeValidationFailed)
	}
	if d.UserID == 0 {
		return internal.NewValidationError("UserID is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type UpdateDTO struct {
	Name            *string `json:"Name"`
	Email           *string `json:"Email"`
	ContractType    *string `json:"contractType"`
	BankAccountInfo *string `json:"BankAccountInfo"`
	DepartmentID    *int64  `json:"DepartmentID"`
	UserID          *int64  `json:"UserID"`
}

func (d UpdateDTO) Validate() error {
	if d.Name != nil && *d.Name == "" {
		return internal.NewValidationError("Name cannot be empty", internal.ErrCodeValidationFailed)
	}
	if d.ContractType != nil && *d.ContractType == "" {
		return internal.NewValidationError("contractType cannot be empty", internal.ErrCodeValidationFailed)
	}
	return nil
}
