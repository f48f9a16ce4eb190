// Package refcheck performs the application-level referential integrity
// checks that run before every create/update write: each foreign key must
// resolve to an existing row, or the write fails with 400 "Invalid <Field>".
// The database schema itself carries no ON DELETE behavior, so this is the
// only integrity layer.
package refcheck

import (
	"gorm.io/gorm"

	"github.com/taskmetrics/task-incentive/internal"
	"github.com/taskmetrics/task-incentive/internal/core/model"
)

// Entity identifies a referenced row type.
type Entity string

const (
	Employee    Entity = "employee"
	Department  Entity = "department"
	TaskType    Entity = "tasktype"
	UserAccount Entity = "useraccount"
)

// API is what services depend on.
type API interface {
	Exists(entity Entity, id int64) (bool, error)
	Require(entity Entity, field string, id int64) error
}

type Checker struct {
	db *gorm.DB
}

func NewChecker(db *gorm.DB) *Checker {
	return &Checker{db: db}
}

// Exists reports whether the row with the given primary key is present.
func (c *Checker) Exists(entity Entity, id int64) (bool, error) {
	var count int64
	var err error

	// Parameterized conditions throughout: a struct condition drops
	// zero-value fields, so id 0 would match the whole table.
	switch entity {
	case Employee:
		err = c.db.Model(&model.Employee{}).Where(`"EmployeeID" = ?`, id).Count(&count).Error
	case Department:
		err = c.db.Model(&model.Department{}).Where(`"DepartmentID" = ?`, id).Count(&count).Error
	case TaskType:
		err = c.db.Model(&model.TaskType{}).Where(`"TaskTypeID" = ?`, id).Count(&count).Error
	case UserAccount:
		err = c.db.Model(&model.UserAccount{}).Where(`"UserID" = ?`, id).Count(&count).Error
	default:
		return false, internal.NewInternalError("unknown reference entity", nil)
	}

	if err != nil {
		return false, internal.NewInternalError("reference lookup failed", err)
	}
	return count > 0, nil
}

// Require fails with a 400 "Invalid <field>" error when the referenced row
// is absent. field is the request field name, e.g. "ManagerID".
func (c *Checker) Require(entity Entity, field string, id int64) error {
	ok, err := c.Exists(entity, id)
	if err != nil {
		return err
	}
	if !ok {
		return internal.NewInvalidReferenceError(field)
	}
	return nil
}
