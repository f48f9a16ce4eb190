package incentive

import (
	"log/slog"

	"github.com/taskmetrics/task-incentive/internal"
	"github.com/taskmetrics/task-incentive/internal/core/model"
	"github.com/taskmetrics/task-incentive/internal/core/refcheck"
)

var errNotFound = internal.NewNotFoundError("Incentive payment not found", internal.ErrCodePaymentNotFound)

type Service struct {
	repo   RepositoryAPI
	refs   refcheck.API
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, refs refcheck.API, logger *slog.Logger) *Service {
	return &Service{repo: repo, refs: refs, logger: logger}
}

func (s *Service) GetAll() ([]Response, error) {
	payments, err := s.repo.GetAll()
	if err != nil {
		return nil, internal.NewInternalError("failed to list incentive payments", err)
	}

	responses := make([]Response, 0, len(payments))
	for _, payment := range payments {
		responses = append(responses, toResponse(payment))
	}
	return responses, nil
}

func (s *Service) GetByID(id int64) (*Response, error) {
	payment, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to get incentive payment", err)
	}
	if payment == nil {
		return nil, errNotFound
	}
	resp := toResponse(payment)
	return &resp, nil
}

func (s *Service) Create(dto CreateDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if err := s.refs.Require(refcheck.Employee, "EmployeeID", dto.EmployeeID); err != nil {
		return nil, err
	}

	payment := &model.IncentivePayment{
		EmployeeID:     dto.EmployeeID,
		PaymentMonth:   dto.PaymentMonth,
		PaymentDate:    dto.PaymentDate,
		IncentiveType:  dto.IncentiveType,
		Amount:         dto.Amount,
		ApprovalStatus: dto.ApprovalStatus,
	}
	if err := s.repo.Create(payment); err != nil {
		return nil, internal.NewInternalError("failed to create incentive payment", err)
	}

	s.logger.Info("incentive payment created",
		"incentivePaymentId", payment.IncentivePaymentID,
		"employeeId", payment.EmployeeID,
		"paymentMonth", payment.PaymentMonth)
	return s.GetByID(payment.IncentivePaymentID)
}

func (s *Service) Update(id int64, dto UpdateDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to get incentive payment", err)
	}
	if existing == nil {
		return nil, errNotFound
	}

	fields := map[string]interface{}{}
	if dto.EmployeeID != nil {
		if err := s.refs.Require(refcheck.Employee, "EmployeeID", *dto.EmployeeID); err != nil {
			return nil, err
		}
		fields["EmployeeID"] = *dto.EmployeeID
	}
	if dto.PaymentMonth != nil {
		fields["PaymentMonth"] = *dto.PaymentMonth
	}
	if dto.PaymentDate != nil {
		fields["PaymentDate"] = *dto.PaymentDate
	}
	if dto.IncentiveType != nil {
		fields["IncentiveType"] = *dto.IncentiveType
	}
	if dto.Amount != nil {
		fields["Amount"] = *dto.Amount
	}
	if dto.ApprovalStatus != nil {
		fields["ApprovalStatus"] = *dto.ApprovalStatus
	}

	if len(fields) > 0 {
		if err := s.repo.Update(id, fields); err != nil {
			return nil, internal.NewInternalError("failed to update incentive payment", err)
		}
	}

	return s.GetByID(id)
}

func (s *Service) Delete(id int64) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return internal.NewInternalError("failed to get incentive payment", err)
	}
	if existing == nil {
		return errNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return internal.NewInternalError("failed to delete incentive payment", err)
	}

	s.logger.Info("incentive payment deleted", "incentivePaymentId", id)
	return nil
}
