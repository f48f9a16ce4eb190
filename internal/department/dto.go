package department

import "github.com/taskmetrics/task-incentive/internal"

// CreateDTO carries the allow-listed mutable fields; anything else in the
// request body is dropped by decoding.
type CreateDTO struct {
	Name      string `json:"Name"`
	ManagerID *int64 `json:"ManagerID"`
}

func (d CreateDTO) Validate() error {
	if d.Name == "" {
		return internal.NewValidationError("Name is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

// UpdateDTO overwrites only the fields present in the request.
type UpdateDTO struct {
	Name      *string `json:"Name"`
	ManagerID *int64  `json:"ManagerID"`
}

func (d UpdateDTO) Validate() error {
	if d.Name != nil && *d.Name == "" {
		return internal.NewValidationError("Name cannot be empty", internal.ErrCodeValidationFailed)
	}
	return nil
}
