package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/taskmetrics/task-incentive/internal/core/model"
	"github.com/taskmetrics/task-incentive/internal/taskreport"
)

type TaskReportRepository struct {
	db *gorm.DB
}

func NewTaskReportRepository(db *gorm.DB) taskreport.RepositoryAPI {
	return &TaskReportRepository{db: db}
}

func (r *TaskReportRepository) GetAll() ([]*model.TaskReport, error) {
	var reps []*model.TaskReport
	err := r.db.Preload("Employee").Find(&reps).Error
	return reps, err
}

func (r *TaskReportRepository) GetByID(id int64) (*model.TaskReport, error) {
	var rep model.TaskReport
	err := r.db.Preload("Employee").
		Where(`"TaskReportID" = ?`, id).
		First(&rep).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rep, nil
}

func (r *TaskReportRepository) GetByEmployee(employeeID int64) ([]*model.TaskReport, error) {
	var reps []*model.TaskReport
	err := r.db.Where(`"EmployeeID" = ?`, employeeID).Find(&reps).Error
	return reps, err
}

func (r *TaskReportRepository) Create(rep *model.TaskReport) error {
	return r.db.Create(rep).Error
}

func (r *TaskReportRepository) Update(id int64, fields map[string]interface{}) error {
	return r.db.Model(&model.TaskReport{}).
		Where(`"TaskReportID" = ?`, id).
		Updates(fields).Error
}

func (r *TaskReportRepository) Delete(id int64) error {
	return r.db.Delete(&model.TaskReport{}, id).Error
}
