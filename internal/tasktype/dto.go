package tasktype

import "github.com/taskmetrics/task-incentive/internal"

// CreateDTO requires both incentive rates; zero is a legal rate, so the
// fields are pointers to tell "absent" apart from "0".
type CreateDTO struct {
	Name           string `json:"Name"`
	IncentiveStaff *int   `json:"IncentiveStaff"`
	IncentiveTrial *int   `json:"IncentiveTrial"`
}

func (d CreateDTO) Validate() error {
	if d.Name == "" || d.IncentiveStaff == nil || d.IncentiveTrial == nil {
		return internal.NewValidationError("Missing required fields", internal.ErrCodeValidationFailed)
	}
	return nil
}

type UpdateDTO struct {
	Name           *string `json:"Name"`
	IncentiveStaff *int    `json:"IncentiveStaff"`
	IncentiveTrial *int    `json:"IncentiveTrial"`
}

func (d UpdateDTO) Validate() error {
	if d.Name != nil && *d.Name == "" {
		return internal.NewValidationError("Name cannot be empty", internal.ErrCodeValidationFailed)
	}
	return nil
}
