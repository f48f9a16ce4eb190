package tasktype

import (
	"log/slog"

	"github.com/taskmetrics/task-incentive/internal"
	"github.com/taskmetrics/task-incentive/internal/core/model"
)

var errNotFound = internal.NewNotFoundError("TaskType not found", internal.ErrCodeTaskTypeNotFound)

// Task types reference nothing, so the service carries no refcheck
// dependency.
type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetAll() ([]*model.TaskType, error) {
	types, err := s.repo.GetAll()
	if err != nil {
		return nil, internal.NewInternalError("failed to list task types", err)
	}
	return types, nil
}

func (s *Service) GetByID(id int64) (*model.TaskType, error) {
	tt, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to get task type", err)
	}
	if tt == nil {
		return nil, errNotFound
	}
	return tt, nil
}

func (s *Service) Create(dto CreateDTO) (*model.TaskType, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	tt := &model.TaskType{
		Name:           dto.Name,
		IncentiveStaff: *dto.IncentiveStaff,
		IncentiveTrial: *dto.IncentiveTrial,
	}
	if err := s.repo.Create(tt); err != nil {
		return nil, internal.NewInternalError("failed to create task type", err)
	}

	s.logger.Info("task type created", "taskTypeId", tt.TaskTypeID)
	return tt, nil
}

func (s *Service) Update(id int64, dto UpdateDTO) (*model.TaskType, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to get task type", err)
	}
	if existing == nil {
		return nil, errNotFound
	}

	fields := map[string]interface{}{}
	if dto.Name != nil {
		fields["Name"] = *dto.Name
	}
	if dto.IncentiveStaff != nil {
		fields["IncentiveStaff"] = *dto.IncentiveStaff
	}
	if dto.IncentiveTrial != nil {
		fields["IncentiveTrial"] = *dto.IncentiveTrial
	}

	if len(fields) > 0 {
		if err := s.repo.Update(id, fields); err != nil {
			return nil, internal.NewInternalError("failed to update task type", err)
		}
	}

	return s.GetByID(id)
}

func (s *Service) Delete(id int64) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return internal.NewInternalError("failed to get task type", err)
	}
	if existing == nil {
		return errNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return internal.NewInternalError("failed to delete task type", err)
	}

	s.logger.Info("task type deleted", "taskTypeId", id)
	return nil
}
