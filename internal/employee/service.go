package employee

import (
	"log/slog"

	"github.com/taskmetrics/task-incentive/internal"
	"github.com/taskmetrics/task-incentive/internal/core/model"
	"github.com/taskmetrics/task-incentive/internal/core/refcheck"
)

var errNotFound = internal.NewNotFoundError("Employee not found", internal.ErrCodeEmployeeNotFound)

type Service struct {
	repo   RepositoryAPI
	refs   refcheck.API
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, refs refcheck.API, logger *slog.Logger) *Service {
	return &Service{repo: repo, refs: refs, logger: logger}
}

func (s *Service) GetAll() ([]*model.Employee, error) {
	emps, err := s.repo.GetAll()
	if err != nil {
		return nil, internal.NewInternalError("failed to list employees", err)
	}
	return emps, nil
}

func (s *Service) GetByID(id int64) (*model.Employee, error) {
	emp, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to get employee", err)
	}
	if emp == nil {
		return nil, errNotFound
	}
	return emp, nil
}

func (s *Service) GetByUserID(userID int64) (*model.Employee, error) {
	emp, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, internal.NewInternalError("failed to get employee", err)
	}
	if emp == nil {
		return nil, errNotFound
	}
	return emp, nil
}

func (s *Service) Create(dto CreateDTO) (*model.Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(dto.EmployeeID)
	if err != nil {
		return nil, internal.NewInternalError("failed to get employee", err)
	}
	if existing != nil {
		return nil, internal.NewConflictError("employee already exists", internal.ErrCodeValidationFailed)
	}

	if err := s.checkReferences(dto.DepartmentID, &dto.UserID); err != nil {
		return nil, err
	}

	emp := &model.Employee{
		EmployeeID:      dto.EmployeeID,
		Name:            dto.Name,
		Email:           dto.Email,
		ContractType:    dto.ContractType,
		BankAccountInfo: dto.BankAccountInfo,
		DepartmentID:    dto.DepartmentID,
		UserID:          dto.UserID,
	}
	if err := s.repo.Create(emp); err != nil {
		return nil, internal.NewInternalError("failed to create employee", err)
	}

	s.logger.Info("employee created", "employeeId", emp.EmployeeID)
	return s.GetByID(emp.EmployeeID)
}

func (s *Service) Update(id int64, dto UpdateDTO) (*model.Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to get employee", err)
	}
	if existing == nil {
		return nil, errNotFound
	}

	if err := s.checkReferences(dto.DepartmentID, dto.UserID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if dto.Name != nil {
		fields["Name"] = *dto.Name
	}
	if dto.Email != nil {
		fields["Email"] = *dto.Email
	}
	if dto.ContractType != nil {
		fields["contractType"] = *dto.ContractType
	}
	if dto.BankAccountInfo != nil {
		fields["BankAccountInfo"] = *dto.BankAccountInfo
	}
	if dto.DepartmentID != nil {
		fields["DepartmentID"] = *dto.DepartmentID
	}
	if dto.UserID != nil {
		fields["UserID"] = *dto.UserID
	}

	if len(fields) > 0 {
		if err := s.repo.Update(id, fields); err != nil {
			return nil, internal.NewInternalError("failed to update employee", err)
		}
	}

	return s.GetByID(id)
}

func (s *Service) Delete(id int64) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return internal.NewInternalError("failed to get employee", err)
	}
	if existing == nil {
		return errNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return internal.NewInternalError("failed to delete employee", err)
	}

	s.logger.Info("employee deleted", "employeeId", id)
	return nil
}

func (s *Service) checkReferences(departmentID, userID *int64) error {
	if departmentID != nil {
		if err := s.refs.Require(refcheck.Department, "DepartmentID", *departmentID); err != nil {
			return err
		}
	}
	if userID != nil {
		if err := s.refs.Require(refcheck.UserAccount, "UserID", *userID); err != nil {
			return err
		}
	}
	return nil
}
