// Package model holds the persisted row types for the seven relational
// tables. Column and JSON names keep the PascalCase wire format the SPA
// already speaks; association aliases (department, userAccount, manager,
// employee, taskType) match it too.
package model

import "time"

// Roles an account can carry. Route access is decided from these.
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

func ValidRole(role string) bool {
	switch role {
	case RoleEmployee, RoleManager, RoleAdmin:
		return true
	}
	return false
}

type UserAccount struct {
	UserID       int64      `json:"UserID" gorm:"column:UserID;primaryKey;autoIncrement"`
	Username     string     `json:"Username" gorm:"column:Username;size:50;not null;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"column:PasswordHash;size:255;not null"`
	Role         string     `json:"Role" gorm:"column:Role;size:20;not null;default:employee"`
	LastLogin    *time.Time `json:"LastLogin" gorm:"column:LastLogin"`
	CreatedAt    time.Time  `json:"CreatedAt" gorm:"column:CreatedAt"`
	UpdatedAt    time.Time  `json:"UpdatedAt" gorm:"column:UpdatedAt"`
}

func (UserAccount) TableName() string { return "UserAccount" }

type Department struct {
	DepartmentID int64  `json:"DepartmentID" gorm:"column:DepartmentID;primaryKey;autoIncrement"`
	Name         string `json:"Name" gorm:"column:Name;size:100;not null"`
	ManagerID    *int64 `json:"ManagerID" gorm:"column:ManagerID"`

	Manager *Employee `json:"manager,omitempty" gorm:"foreignKey:ManagerID;references:EmployeeID"`
}

func (Department) TableName() string { return "Department" }

// Employee IDs are assigned by HR, not generated.
type Employee struct {
	EmployeeID      int64   `json:"EmployeeID" gorm:"column:EmployeeID;primaryKey;autoIncrement:false"`
	Name            string  `json:"Name" gorm:"column:Name;size:100;not null"`
	Email           *string `json:"Email" gorm:"column:Email;size:50;uniqueIndex"`
	ContractType    string  `json:"contractType" gorm:"column:contractType;size:20;not null"`
	BankAccountInfo *string `json:"BankAccountInfo" gorm:"column:BankAccountInfo;size:150"`
	DepartmentID    *int64  `json:"DepartmentID" gorm:"column:DepartmentID"`
	UserID          int64   `json:"UserID" gorm:"column:UserID;not null"`

	Department  *Department  `json:"department,omitempty" gorm:"foreignKey:DepartmentID;references:DepartmentID"`
	UserAccount *UserAccount `json:"userAccount,omitempty" gorm:"foreignKey:UserID;references:UserID"`
}

func (Employee) TableName() string { return "Employee" }

type TaskType struct {
	TaskTypeID int64  `json:"TaskTypeID" gorm:"column:TaskTypeID;primaryKey;autoIncrement"`
	Name       string `json:"Name" gorm:"column:Name;size:50;not null"`
	// Incentive per hour for regular and trial staff, in integer currency units.
	IncentiveStaff int `json:"IncentiveStaff" gorm:"column:IncentiveStaff;not null"`
	IncentiveTrial int `json:"IncentiveTrial" gorm:"column:IncentiveTrial;not null"`
}

func (TaskType) TableName() string { return "TaskType" }

type TaskRecord struct {
	TaskRecordID int64   `json:"TaskRecordID" gorm:"column:TaskRecordID;primaryKey;autoIncrement"`
	EmployeeID   int64   `json:"EmployeeID" gorm:"column:EmployeeID;not null"`
	TaskTypeID   int64   `json:"TaskTypeID" gorm:"column:TaskTypeID;not null"`
	TaskDate     Date    `json:"TaskDate" gorm:"column:TaskDate;not null"`
	Duration     float64 `json:"Duration" gorm:"column:Duration;not null"`
	Quantity     *int    `json:"Quantity" gorm:"column:Quantity"`
	Details      *string `json:"Details" gorm:"column:Details;type:text"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;references:EmployeeID"`
	TaskType *TaskType `json:"taskType,omitempty" gorm:"foreignKey:TaskTypeID;references:TaskTypeID"`
}

func (TaskRecord) TableName() string { return "TaskRecord" }

// TaskReport aggregates are supplied by the caller; nothing recomputes them
// from TaskRecords.
type TaskReport struct {
	TaskReportID   int64     `json:"TaskReportID" gorm:"column:TaskReportID;primaryKey;autoIncrement"`
	EmployeeID     int64     `json:"EmployeeID" gorm:"column:EmployeeID;not null"`
	ReportMonth    string    `json:"ReportMonth" gorm:"column:ReportMonth;size:7;not null"`
	SubmissionDate time.Time `json:"SubmissionDate" gorm:"column:SubmissionDate;not null"`
	TotalHours     *float64  `json:"TotalHours" gorm:"column:TotalHours"`
	TotalTask      *string   `json:"TotalTask" gorm:"column:TotalTask;size:45"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;references:EmployeeID"`
}

func (TaskReport) TableName() string { return "TaskReport" }

type PerformanceRating struct {
	PerformanceRatingID int64   `json:"PerformanceRatingID" gorm:"column:PerformanceRatingID;primaryKey;autoIncrement"`
	EmployeeID          int64   `json:"EmployeeID" gorm:"column:EmployeeID;not null"`
	ManagerID           int64   `json:"ManagerID" gorm:"column:ManagerID;not null"`
	Month               string  `json:"Month" gorm:"column:Month;size:7;not null"`
	Rating              float64 `json:"Rating" gorm:"column:Rating;not null"`
	Comments            *string `json:"Comments" gorm:"column:Comments;type:text"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;references:EmployeeID"`
	Manager  *Employee `json:"manager,omitempty" gorm:"foreignKey:ManagerID;references:EmployeeID"`
}

func (PerformanceRating) TableName() string { return "PerformanceRating" }

type IncentivePayment struct {
	IncentivePaymentID int64   `json:"IncentivePaymentID" gorm:"column:IncentivePaymentID;primaryKey;autoIncrement"`
	EmployeeID         int64   `json:"EmployeeID" gorm:"column:EmployeeID;not null"`
	PaymentMonth       string  `json:"PaymentMonth" gorm:"column:PaymentMonth;size:7;not null"`
	PaymentDate        Date    `json:"PaymentDate" gorm:"column:PaymentDate;not null"`
	IncentiveType      string  `json:"IncentiveType" gorm:"column:IncentiveType;size:20;not null"`
	Amount             float64 `json:"Amount" gorm:"column:Amount;not null"`
	ApprovalStatus     string  `json:"ApprovalStatus" gorm:"column:ApprovalStatus;size:20;not null"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;references:EmployeeID"`
}

func (IncentivePayment) TableName() string { return "IncentivePayment" }

// EmployeeRef is the trimmed employee shape embedded in admin listings.
type EmployeeRef struct {
	EmployeeID int64  `json:"EmployeeID"`
	Name       string `json:"Name"`
}

func RefOf(e *Employee) *EmployeeRef {
	if e == nil {
		return nil
	}
	return &EmployeeRef{EmployeeID: e.EmployeeID, Name: e.Name}
}

// TaskTypeRef is the trimmed task type shape embedded in per-employee
// task record listings.
type TaskTypeRef struct {
	TaskTypeID int64  `json:"TaskTypeID"`
	Name       string `json:"Name"`
}

func TaskTypeRefOf(t *TaskType) *TaskTypeRef {
	if t == nil {
		return nil
	}
	return &TaskTypeRef{TaskTypeID: t.TaskTypeID, Name: t.Name}
}

// ValidMonth reports whether s is a "YYYY-MM" month key.
func ValidMonth(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil
}

// AllModels is what test databases migrate.
func AllModels() []interface{} {
	return []interface{}{
		&UserAccount{},
		&Department{},
		&Employee{},
		&TaskType{},
		&TaskRecord{},
		&TaskReport{},
		&PerformanceRating{},
		&IncentivePayment{},
	}
}
