package employee_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/taskmetrics/task-incentive/internal/core/model"
	"github.com/taskmetrics/task-incentive/internal/core/refcheck"
	"github.com/taskmetrics/task-incentive/internal/employee"
	employeePostgres "github.com/taskmetrics/task-incentive/internal/employee/postgres"
)

func TestEmployee(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Module Suite")
}

var _ = Describe("Employee Handler Integration", func() {
	var (
		db      *gorm.DB
		router  *chi.Mux
		account *model.UserAccount
		dept    *model.Department
	)

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(model.AllModels()...)).To(Succeed())

		account = &model.UserAccount{Username: "sari.employee", PasswordHash: "bcrypt-hash-here", Role: model.RoleEmployee}
		Expect(db.Create(account).Error).To(Succeed())
		dept = &model.Department{Name: "Production"}
		Expect(db.Create(dept).Error).To(Succeed())

		repo := employeePostgres.NewEmployeeRepository(db)
		service := employee.NewService(repo, refcheck.NewChecker(db), slogger)
		handler := employee.NewHandler(service)

		router = chi.NewRouter()
		router.Get("/employees", handler.List)
		router.Post("/employees", handler.Create)
		router.Get("/employees/byUserId/{userId}", handler.GetByUserID)
		router.Get("/employees/{id}", handler.Get)
		router.Put("/employees/{id}", handler.Update)
		router.Delete("/employees/{id}", handler.Delete)
	})

	create := func(body map[string]interface{}) *httptest.ResponseRecorder {
		raw, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBuffer(raw))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	validBody := func() map[string]interface{} {
		return map[string]interface{}{
			"EmployeeID":   10122360,
			"Name":         "Sari Wulandari",
			"contractType": "trial",
			"DepartmentID": dept.DepartmentID,
			"UserID":       account.UserID,
		}
	}

	It("should round-trip an employee with expansions and no password hash", func() {
		w := create(validBody())
		Expect(w.Code).To(Equal(http.StatusCreated))

		req := httptest.NewRequest(http.MethodGet, "/employees/10122360", nil)
		gw := httptest.NewRecorder()
		router.ServeHTTP(gw, req)
		Expect(gw.Code).To(Equal(http.StatusOK))

		raw := gw.Body.String()
		Expect(raw).NotTo(ContainSubstring("bcrypt-hash-here"))
		Expect(raw).NotTo(ContainSubstring("PasswordHash"))

		var resp map[string]interface{}
		Expect(json.Unmarshal([]byte(raw), &resp)).To(Succeed())
		Expect(resp["EmployeeID"]).To(BeNumerically("==", 10122360))
		Expect(resp["contractType"]).To(Equal("trial"))

		department, ok := resp["department"].(map[string]interface{})
		Expect(ok).To(BeTrue())
		Expect(department["Name"]).To(Equal("Production"))

		userAccount, ok := resp["userAccount"].(map[string]interface{})
		Expect(ok).To(BeTrue())
		Expect(userAccount["Username"]).To(Equal("sari.employee"))
	})

	It("should conflict on a duplicate employee ID", func() {
		Expect(create(validBody()).Code).To(Equal(http.StatusCreated))

		w := create(validBody())
		Expect(w.Code).To(Equal(http.StatusConflict))
	})

	It("should reject an unknown department reference", func() {
		body := validBody()
		body["DepartmentID"] = 9999

		w := create(body)
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var resp map[string]interface{}
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp["message"]).To(Equal("Invalid DepartmentID"))
	})

	It("should reject an unknown user account reference", func() {
		body := validBody()
		body["UserID"] = 9999

		w := create(body)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("Invalid UserID"))
	})

	It("should resolve an employee by owning user account", func() {
		Expect(create(validBody()).Code).To(Equal(http.StatusCreated))

		req := httptest.NewRequest(http.MethodGet, "/employees/byUserId/"+itoa(account.UserID), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var resp map[string]interface{}
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp["EmployeeID"]).To(BeNumerically("==", 10122360))
	})

	It("should return 404 when no employee owns the account", func() {
		req := httptest.NewRequest(http.MethodGet, "/employees/byUserId/424242", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should apply partial updates without touching other fields", func() {
		Expect(create(validBody()).Code).To(Equal(http.StatusCreated))

		req := httptest.NewRequest(http.MethodPut, "/employees/10122360", bytes.NewBufferString(`{"contractType":"staff"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var resp map[string]interface{}
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp["contractType"]).To(Equal("staff"))
		Expect(resp["Name"]).To(Equal("Sari Wulandari"))
	})
})

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
