package performance

import (
	"log/slog"

	"github.com/taskmetrics/task-incentive/internal"
	"github.com/taskmetrics/task-incentive/internal/core/model"
	"github.com/taskmetrics/task-incentive/internal/core/refcheck"
)

var errNotFound = internal.NewNotFoundError("Performance rating not found", internal.ErrCodeRatingNotFound)

type Service struct {
	repo   RepositoryAPI
	refs   refcheck.API
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, refs refcheck.API, logger *slog.Logger) *Service {
	return &Service{repo: repo, refs: refs, logger: logger}
}

func (s *Service) GetAll() ([]Response, error) {
	ratings, err := s.repo.GetAll()
	if err != nil {
		return nil, internal.NewInternalError("failed to list performance ratings", err)
	}

	responses := make([]Response, 0, len(ratings))
	for _, rating := range ratings {
		responses = append(responses, toResponse(rating))
	}
	return responses, nil
}

func (s *Service) GetByID(id int64) (*Response, error) {
	rating, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to get performance rating", err)
	}
	if rating == nil {
		return nil, errNotFound
	}
	resp := toResponse(rating)
	return &resp, nil
}

func (s *Service) Create(dto CreateDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	// Both sides of the rating must resolve to employees; the rater is a
	// plain employee row too, role gating happens at the route level.
	if err := s.refs.Require(refcheck.Employee, "EmployeeID", dto.EmployeeID); err != nil {
		return nil, err
	}
	if err := s.refs.Require(refcheck.Employee, "ManagerID", dto.ManagerID); err != nil {
		return nil, err
	}

	rating := &model.PerformanceRating{
		EmployeeID: dto.EmployeeID,
		ManagerID:  dto.ManagerID,
		Month:      dto.Month,
		Rating:     dto.Rating,
		Comments:   dto.Comments,
	}
	if err := s.repo.Create(rating); err != nil {
		return nil, internal.NewInternalError("failed to create performance rating", err)
	}

	s.logger.Info("performance rating created",
		"performanceRatingId", rating.PerformanceRatingID,
		"employeeId", rating.EmployeeID,
		"managerId", rating.ManagerID)
	return s.GetByID(rating.PerformanceRatingID)
}

func (s *Service) Update(id int64, dto UpdateDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to get performance rating", err)
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
	if dto.ManagerID != nil {
		if err := s.refs.Require(refcheck.Employee, "ManagerID", *dto.ManagerID); err != nil {
			return nil, err
		}
		fields["ManagerID"] = *dto.ManagerID
	}
	if dto.Month != nil {
		fields["Month"] = *dto.Month
	}
	if dto.Rating != nil {
		fields["Rating"] = *dto.Rating
	}
	if dto.Comments != nil {
		fields["Comments"] = *dto.Comments
	}

	if len(fields) > 0 {
		if err := s.repo.Update(id, fields); err != nil {
			return nil, internal.NewInternalError("failed to update performance rating", err)
		}
	}

	return s.GetByID(id)
}

func (s *Service) Delete(id int64) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return internal.NewInternalError("failed to get performance rating", err)
	}
	if existing == nil {
		return errNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return internal.NewInternalError("failed to delete performance rating", err)
	}

	s.logger.Info("performance rating deleted", "performanceRatingId", id)
	return nil
}
