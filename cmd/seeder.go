package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/taskmetrics/task-incentive/internal/core/model"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		orm, err := initORM(db)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			// Children first so nothing dangles mid-seed.
			for _, m := range []interface{}{
				&model.IncentivePayment{},
				&model.PerformanceRating{},
				&model.TaskReport{},
				&model.TaskRecord{},
				&model.Employee{},
				&model.Department{},
				&model.TaskType{},
				&model.UserAccount{},
			} {
				if err := orm.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
					log.Fatalf("failed to clear data: %v", err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte("password"), cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to hash seed password: %v", err)
		}

		accounts := []model.UserAccount{
			{Username: "admin", PasswordHash: string(hash), Role: model.RoleAdmin},
			{Username: "budi.manager", PasswordHash: string(hash), Role: model.RoleManager},
			{Username: "sari.employee", PasswordHash: string(hash), Role: model.RoleEmployee},
		}
		userIDs := map[string]int64{}
		for i := range accounts {
			acc := accounts[i]
			var existing model.UserAccount
			err := orm.Where(&model.UserAccount{Username: acc.Username}).First(&existing).Error
			if err == nil {
				userIDs[acc.Username] = existing.UserID
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Fatalf("failed to look up user %s: %v", acc.Username, err)
			}
			if err := orm.Create(&acc).Error; err != nil {
				log.Fatalf("failed to seed user %s: %v", acc.Username, err)
			}
			userIDs[acc.Username] = acc.UserID
			fmt.Println("Seeded user account:", acc.Username)
		}

		taskTypes := []model.TaskType{
			{Name: "Translation", IncentiveStaff: 25000, IncentiveTrial: 15000},
			{Name: "Proofreading", IncentiveStaff: 20000, IncentiveTrial: 12000},
			{Name: "Typesetting", IncentiveStaff: 18000, IncentiveTrial: 10000},
		}
		for i := range taskTypes {
			tt := taskTypes[i]
			var existing model.TaskType
			err := orm.Where(&model.TaskType{Name: tt.Name}).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Fatalf("failed to look up task type %s: %v", tt.Name, err)
			}
			if err := orm.Create(&tt).Error; err != nil {
				log.Fatalf("failed to seed task type %s: %v", tt.Name, err)
			}
			fmt.Println("Seeded task type:", tt.Name)
		}

		department := model.Department{Name: "Production"}
		var existingDept model.Department
		err = orm.Where(&model.Department{Name: department.Name}).First(&existingDept).Error
		if err == nil {
			department = existingDept
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := orm.Create(&department).Error; err != nil {
				log.Fatalf("failed to seed department: %v", err)
			}
			fmt.Println("Seeded department:", department.Name)
		} else {
			log.Fatalf("failed to look up department: %v", err)
		}

		// Employee IDs come from HR, so the seed fixes them.
		employees := []model.Employee{
			{EmployeeID: 10122353, Name: "Budi Santoso", ContractType: "staff", DepartmentID: &department.DepartmentID, UserID: userIDs["budi.manager"]},
			{EmployeeID: 10122360, Name: "Sari Wulandari", ContractType: "trial", DepartmentID: &department.DepartmentID, UserID: userIDs["sari.employee"]},
		}
		for i := range employees {
			emp := employees[i]
			var existing model.Employee
			err := orm.Where(&model.Employee{EmployeeID: emp.EmployeeID}).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Fatalf("failed to look up employee %d: %v", emp.EmployeeID, err)
			}
			if err := orm.Create(&emp).Error; err != nil {
				log.Fatalf("failed to seed employee %d: %v", emp.EmployeeID, err)
			}
			fmt.Println("Seeded employee:", emp.Name)
		}

		managerID := employees[0].EmployeeID
		if department.ManagerID == nil {
			if err := orm.Model(&model.Department{}).
				Where(&model.Department{DepartmentID: department.DepartmentID}).
				Updates(map[string]interface{}{"ManagerID": managerID}).Error; err != nil {
				log.Fatalf("failed to assign department manager: %v", err)
			}
			fmt.Println("Assigned department manager:", managerID)
		}

		fmt.Println("Seeding complete")
	},
}
