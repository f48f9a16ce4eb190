package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/taskmetrics/task-incentive/internal/core/model"
	"github.com/taskmetrics/task-incentive/internal/department"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) department.RepositoryAPI {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) GetAll() ([]*model.Department, error) {
	var depts []*model.Department
	err := r.db.Preload("Manager").Find(&depts).Error
	return depts, err
}

func (r *DepartmentRepository) GetByID(id int64) (*model.Department, error) {
	var dept model.Department
	err := r.db.Preload("Manager").
		Where(`"DepartmentID" = ?`, id).
		First(&dept).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dept, nil
}

func (r *DepartmentRepository) Create(dept *model.Department) error {
	return r.db.Create(dept).Error
}

func (r *DepartmentRepository) Update(id int64, fields map[string]interface{}) error {
	return r.db.Model(&model.Department{}).
		Where(`"DepartmentID" = ?`, id).
		Updates(fields).Error
}

func (r *DepartmentRepository) Delete(id int64) error {
	return r.db.Delete(&model.Department{}, id).Error
}
