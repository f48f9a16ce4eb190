package auth

import (
	"github.com/taskmetrics/task-incentive/internal"
	"github.com/taskmetrics/task-incentive/internal/core/model"
)

// RegisterDTO is the transport shape for account registration. Role is
// optional and defaults to employee.
type RegisterDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (d RegisterDTO) Validate() error {
	if d.Username == "" {
		return internal.NewValidationError("username is required", internal.ErrCodeValidationFailed)
	}
	if d.Password == "" {
		return internal.NewValidationError("password is required", internal.ErrCodeValidationFailed)
	}
	if d.Role != "" && !model.ValidRole(d.Role) {
		return internal.NewValidationError("role must be one of employee, manager, admin", internal.ErrCodeInvalidRole)
	}
	return nil
}

type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (d LoginDTO) Validate() error {
	if d.Username == "" {
		return internal.NewValidationError("username is required", internal.ErrCodeValidationFailed)
	}
	if d.Password == "" {
		return internal.NewValidationError("password is required", internal.ErrCodeValidationFailed)
	}
	return nil
}
