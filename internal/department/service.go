package department

import (
	"log/slog"

	"github.com/taskmetrics/task-incentive/internal"
	"github.com/taskmetrics/task-incentive/internal/core/model"
	"github.com/taskmetrics/task-incentive/internal/core/refcheck"
)

var errNotFound = internal.NewNotFoundError("Department not found", internal.ErrCodeDepartmentNotFound)

type Service struct {
	repo   RepositoryAPI
	refs   refcheck.API
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, refs refcheck.API, logger *slog.Logger) *Service {
	return &Service{repo: repo, refs: refs, logger: logger}
}

func (s *Service) GetAll() ([]Response, error) {
	depts, err := s.repo.GetAll()
	if err != nil {
		return nil, internal.NewInternalError("failed to list departments", err)
	}

	responses := make([]Response, 0, len(depts))
	for _, d := range depts {
		responses = append(responses, *toResponse(d))
	}
	return responses, nil
}

func (s *Service) GetByID(id int64) (*Response, error) {
	dept, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to get department", err)
	}
	if dept == nil {
		return nil, errNotFound
	}
	return toResponse(dept), nil
}

func (s *Service) Create(dto CreateDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if dto.ManagerID != nil {
		if err := s.refs.Require(refcheck.Employee, "ManagerID", *dto.ManagerID); err != nil {
			return nil, err
		}
	}

	dept := &model.Department{
		Name:      dto.Name,
		ManagerID: dto.ManagerID,
	}
	if err := s.repo.Create(dept); err != nil {
		return nil, internal.NewInternalError("failed to create department", err)
	}

	s.logger.Info("department created", "departmentId", dept.DepartmentID)
	return s.GetByID(dept.DepartmentID)
}

func (s *Service) Update(id int64, dto UpdateDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to get department", err)
	}
	if existing == nil {
		return nil, errNotFound
	}

	fields := map[string]interface{}{}
	if dto.Name != nil {
		fields["Name"] = *dto.Name
	}
	if dto.ManagerID != nil {
		if err := s.refs.Require(refcheck.Employee, "ManagerID", *dto.ManagerID); err != nil {
			return nil, err
		}
		fields["ManagerID"] = *dto.ManagerID
	}

	if len(fields) > 0 {
		if err := s.repo.Update(id, fields); err != nil {
			return nil, internal.NewInternalError("failed to update department", err)
		}
	}

	return s.GetByID(id)
}

func (s *Service) Delete(id int64) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return internal.NewInternalError("failed to get department", err)
	}
	if existing == nil {
		return errNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return internal.NewInternalError("failed to delete department", err)
	}

	s.logger.Info("department deleted", "departmentId", id)
	return nil
}
