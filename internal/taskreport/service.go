package taskreport

import (
	"log/slog"
	"time"

	"github.com/taskmetrics/task-incentive/internal"
	"github.com/taskmetrics/task-incentive/internal/core/model"
	"github.com/taskmetrics/task-incentive/internal/core/refcheck"
)

var errNotFound = internal.NewNotFoundError("Task report not found", internal.ErrCodeTaskReportNotFound)

type Service struct {
	repo   RepositoryAPI
	refs   refcheck.API
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, refs refcheck.API, logger *slog.Logger) *Service {
	return &Service{repo: repo, refs: refs, logger: logger}
}

func (s *Service) GetAll() ([]*model.TaskReport, error) {
	reps, err := s.repo.GetAll()
	if err != nil {
		return nil, internal.NewInternalError("failed to list task reports", err)
	}
	return reps, nil
}

func (s *Service) GetByID(id int64) (*model.TaskReport, error) {
	rep, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to get task report", err)
	}
	if rep == nil {
		return nil, errNotFound
	}
	return rep, nil
}

func (s *Service) GetByEmployee(employeeID int64) ([]*model.TaskReport, error) {
	reps, err := s.repo.GetByEmployee(employeeID)
	if err != nil {
		return nil, internal.NewInternalError("failed to list task reports", err)
	}
	return reps, nil
}

func (s *Service) Create(dto CreateDTO) (*model.TaskReport, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if err := s.refs.Require(refcheck.Employee, "EmployeeID", dto.EmployeeID); err != nil {
		return nil, err
	}

	submitted := dto.SubmissionDate
	if submitted.IsZero() {
		submitted = time.Now()
	}

	rep := &model.TaskReport{
		EmployeeID:     dto.EmployeeID,
		ReportMonth:    dto.ReportMonth,
		SubmissionDate: submitted,
		TotalHours:     dto.TotalHours,
		TotalTask:      dto.TotalTask,
	}
	if err := s.repo.Create(rep); err != nil {
		return nil, internal.NewInternalError("failed to create task report", err)
	}

	s.logger.Info("task report created", "taskReportId", rep.TaskReportID, "employeeId", rep.EmployeeID)
	return s.GetByID(rep.TaskReportID)
}

func (s *Service) Update(id int64, dto UpdateDTO) (*model.TaskReport, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to get task report", err)
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
	if dto.ReportMonth != nil {
		fields["ReportMonth"] = *dto.ReportMonth
	}
	if dto.SubmissionDate != nil {
		fields["SubmissionDate"] = *dto.SubmissionDate
	}
	if dto.TotalHours != nil {
		fields["TotalHours"] = *dto.TotalHours
	}
	if dto.TotalTask != nil {
		fields["TotalTask"] = *dto.TotalTask
	}

	if len(fields) > 0 {
		if err := s.repo.Update(id, fields); err != nil {
			return nil, internal.NewInternalError("failed to update task report", err)
		}
	}

	return s.GetByID(id)
}

func (s *Service) Delete(id int64) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return internal.NewInternalError("failed to get task report", err)
	}
	if existing == nil {
		return errNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return internal.NewInternalError("failed to delete task report", err)
	}

	s.logger.Info("task report deleted", "taskReportId", id)
	return nil
}

// ExportPDF renders the report as a one-page PDF document.
func (s *Service) ExportPDF(id int64) ([]byte, error) {
	rep, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	doc, err := renderReportPDF(rep)
	if err != nil {
		return nil, internal.NewInternalError("failed to render task report pdf", err)
	}
	return doc, nil
}
