package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/taskmetrics/task-incentive/internal/core/model"
	"github.com/taskmetrics/task-incentive/internal/taskrecord"
)

type TaskRecordRepository struct {
	db *gorm.DB
}

func NewTaskRecordRepository(db *gorm.DB) taskrecord.RepositoryAPI {
	return &TaskRecordRepository{db: db}
}

func (r *TaskRecordRepository) GetAll() ([]*model.TaskRecord, error) {
	var recs []*model.TaskRecord
	err := r.db.Preload("Employee").Preload("TaskType").Find(&recs).Error
	return recs, err
}

func (r *TaskRecordRepository) GetByID(id int64) (*model.TaskRecord, error) {
	var rec model.TaskRecord
	err := r.db.Preload("Employee").Preload("TaskType").
		Where(`"TaskRecordID" = ?`, id).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *TaskRecordRepository) GetByEmployee(employeeID int64) ([]*model.TaskRecord, error) {
	var recs []*model.TaskRecord
	err := r.db.Preload("TaskType").
		Where(`"EmployeeID" = ?`, employeeID).
		Find(&recs).Error
	return recs, err
}

func (r *TaskRecordRepository) Create(rec *model.TaskRecord) error {
	return r.db.Create(rec).Error
}

func (r *TaskRecordRepository) Update(id int64, fields map[string]interface{}) error {
	return r.db.Model(&model.TaskRecord{}).
		Where(`"TaskRecordID" = ?`, id).
		Updates(fields).Error
}

func (r *TaskRecordRepository) Delete(id int64) error {
	return r.db.Delete(&model.TaskRecord{}, id).Error
}
