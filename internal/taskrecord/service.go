package taskrecord

import (
	"log/slog"

	"github.com/taskmetrics/task-incentive/internal"
	"github.com/taskmetrics/task-incentive/internal/core/model"
	"github.com/taskmetrics/task-incentive/internal/core/refcheck"
)

var errNotFound = internal.NewNotFoundError("Task record not found", internal.ErrCodeTaskRecordNotFound)

type Service struct {
	repo   RepositoryAPI
	refs   refcheck.API
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, refs refcheck.API, logger *slog.Logger) *Service {
	return &Service{repo: repo, refs: refs, logger: logger}
}

func (s *Service) GetAll() ([]*model.TaskRecord, error) {
	recs, err := s.repo.GetAll()
	if err != nil {
		return nil, internal.NewInternalError("failed to list task records", err)
	}
	return recs, nil
}

func (s *Service) GetByID(id int64) (*model.TaskRecord, error) {
	rec, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to get task record", err)
	}
	if rec == nil {
		return nil, errNotFound
	}
	return rec, nil
}

func (s *Service) GetByEmployee(employeeID int64) ([]EmployeeRecordResponse, error) {
	recs, err := s.repo.GetByEmployee(employeeID)
	if err != nil {
		return nil, internal.NewInternalError("failed to list task records", err)
	}

	responses := make([]EmployeeRecordResponse, 0, len(recs))
	for _, rec := range recs {
		responses = append(responses, toEmployeeRecordResponse(rec))
	}
	return responses, nil
}

func (s *Service) Create(dto CreateDTO) (*model.TaskRecord, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if err := s.refs.Require(refcheck.Employee, "EmployeeID", dto.EmployeeID); err != nil {
		return nil, err
	}
	if err := s.refs.Require(refcheck.TaskType, "TaskTypeID", dto.TaskTypeID); err != nil {
		return nil, err
	}

	rec := &model.TaskRecord{
		EmployeeID: dto.EmployeeID,
		TaskTypeID: dto.TaskTypeID,
		TaskDate:   dto.TaskDate,
		Duration:   dto.Duration,
		Quantity:   dto.Quantity,
		Details:    dto.Details,
	}
	if err := s.repo.Create(rec); err != nil {
		return nil, internal.NewInternalError("failed to create task record", err)
	}

	s.logger.Info("task record created", "taskRecordId", rec.TaskRecordID, "employeeId", rec.EmployeeID)
	return s.GetByID(rec.TaskRecordID)
}

func (s *Service) Update(id int64, dto UpdateDTO) (*model.TaskRecord, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to get task record", err)
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
	if dto.TaskTypeID != nil {
		if err := s.refs.Require(refcheck.TaskType, "TaskTypeID", *dto.TaskTypeID); err != nil {
			return nil, err
		}
		fields["TaskTypeID"] = *dto.TaskTypeID
	}
	if dto.TaskDate != nil {
		fields["TaskDate"] = *dto.TaskDate
	}
	if dto.Duration != nil {
		fields["Duration"] = *dto.Duration
	}
	if dto.Quantity != nil {
		fields["Quantity"] = *dto.Quantity
	}
	if dto.Details != nil {
		fields["Details"] = *dto.Details
	}

	if len(fields) > 0 {
		if err := s.repo.Update(id, fields); err != nil {
			return nil, internal.NewInternalError("failed to update task record", err)
		}
	}

	return s.GetByID(id)
}

func (s *Service) Delete(id int64) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return internal.NewInternalError("failed to get task record", err)
	}
	if existing == nil {
		return errNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return internal.NewInternalError("failed to delete task record", err)
	}

	s.logger.Info("task record deleted", "taskRecordId", id)
	return nil
}
