// Package performance manages monthly manager ratings of employees.
package performance

import (
	"github.com/taskmetrics/task-incentive/internal/core/model"
)

type ServiceAPI interface {
	GetAll() ([]Response, error)
	GetByID(id int64) (*Response, error)
	Create(dto CreateDTO) (*Response, error)
	Update(id int64, dto UpdateDTO) (*Response, error)
	Delete(id int64) error
}

type RepositoryAPI interface {
	GetAll() ([]*model.PerformanceRating, error)
	GetByID(id int64) (*model.PerformanceRating, error)
	Create(rating *model.PerformanceRating) error
	Update(id int64, fields map[string]interface{}) error
	Delete(id int64) error
}

// Response embeds trimmed refs for both sides of the rating.
type Response struct {
	PerformanceRatingID int64              `json:"PerformanceRatingID"`
	EmployeeID          int64              `json:"EmployeeID"`
	ManagerID           int64              `json:"ManagerID"`
	Month               string             `json:"Month"`
	Rating              float64            `json:"Rating"`
	Comments            *string            `json:"Comments"`
	Employee            *model.EmployeeRef `json:"employee,omitempty"`
	Manager             *model.EmployeeRef `json:"manager,omitempty"`
}

func toResponse(r *model.PerformanceRating) Response {
	return Response{
		PerformanceRatingID: r.PerformanceRatingID,
		EmployeeID:          r.EmployeeID,
		ManagerID:           r.ManagerID,
		Month:               r.Month,
		Rating:              r.Rating,
		Comments:            r.Comments,
		Employee:            model.RefOf(r.Employee),
		Manager:             model.RefOf(r.Manager),
	}
}
