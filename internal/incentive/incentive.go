// Package incentive manages monthly incentive payment records.
package incentive

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
	GetAll() ([]*model.IncentivePayment, error)
	GetByID(id int64) (*model.IncentivePayment, error)
	Create(payment *model.IncentivePayment) error
	Update(id int64, fields map[string]interface{}) error
	Delete(id int64) error
}

type Response struct {
	IncentivePaymentID int64              `json:"IncentivePaymentID"`
	EmployeeID         int64              `json:"EmployeeID"`
	PaymentMonth       string             `json:"PaymentMonth"`
	PaymentDate        model.Date         `json:"PaymentDate"`
	IncentiveType      string             `json:"IncentiveType"`
	Amount             float64            `json:"Amount"`
	ApprovalStatus     string             `json:"ApprovalStatus"`
	Employee           *model.EmployeeRef `json:"employee,omitempty"`
}

func toResponse(p *model.IncentivePayment) Response {
	return Response{
		IncentivePaymentID: p.IncentivePaymentID,
		EmployeeID:         p.EmployeeID,
		PaymentMonth:       p.PaymentMonth,
		PaymentDate:        p.PaymentDate,
		IncentiveType:      p.IncentiveType,
		Amount:             p.Amount,
		ApprovalStatus:     p.ApprovalStatus,
		Employee:           model.RefOf(p.Employee),
	}
}
