package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/taskmetrics/task-incentive/internal/core/model"
	"github.com/taskmetrics/task-incentive/internal/employee"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetAll() ([]*model.Employee, error) {
	var emps []*model.Employee
	err := r.db.Preload("Department").Preload("UserAccount").Find(&emps).Error
	return emps, err
}

func (r *EmployeeRepository) GetByID(id int64) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.Preload("Department").Preload("UserAccount").
		Where(`"EmployeeID" = ?`, id).
		First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) GetByUserID(userID int64) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.Preload("Department").
		Where(`"UserID" = ?`, userID).
		First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) Create(emp *model.Employee) error {
	return r.db.Create(emp).Error
}

func (r *EmployeeRepository) Update(id int64, fields map[string]interface{}) error {
	return r.db.Model(&model.Employee{}).
		Where(`"EmployeeID" = ?`, id).
		Updates(fields).Error
}

func (r *EmployeeRepository) Delete(id int64) error {
	return r.db.Delete(&model.Employee{}, id).Error
}
