package department_test

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
	"github.com/taskmetrics/task-incentive/internal/department"
	departmentPostgres "github.com/taskmetrics/task-incentive/internal/department/postgres"
)

func TestDepartment(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Department Module Suite")
}

var _ = Describe("Department Handler Integration", func() {
	var (
		db      *gorm.DB
		handler *department.Handler
		router  *chi.Mux
	)

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(model.AllModels()...)
		Expect(err).NotTo(HaveOccurred())

		// A manager candidate for the reference checks.
		account := &model.UserAccount{Username: "budi.manager", PasswordHash: "x", Role: model.RoleManager}
		Expect(db.Create(account).Error).To(Succeed())
		manager := &model.Employee{EmployeeID: 10122353, Name: "Budi Santoso", ContractType: "staff", UserID: account.UserID}
		Expect(db.Create(manager).Error).To(Succeed())

		repo := departmentPostgres.NewDepartmentRepository(db)
		service := department.NewService(repo, refcheck.NewChecker(db), slogger)
		handler = department.NewHandler(service)

		router = chi.NewRouter()
		router.Get("/departments", handler.List)
		router.Post("/departments", handler.Create)
		router.Get("/departments/{id}", handler.Get)
		router.Put("/departments/{id}", handler.Update)
		router.Delete("/departments/{id}", handler.Delete)
	})

	createDepartment := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/departments", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("Create", func() {
		It("should create a department and embed the manager ref", func() {
			w := createDepartment(`{"Name":"Production","ManagerID":10122353}`)

			Expect(w.Code).To(Equal(http.StatusCreated))

			var resp department.Response
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.DepartmentID).To(BeNumerically(">", 0))
			Expect(resp.Name).To(Equal("Production"))
			Expect(resp.Manager).NotTo(BeNil())
			Expect(resp.Manager.EmployeeID).To(Equal(int64(10122353)))
			Expect(resp.Manager.Name).To(Equal("Budi Santoso"))
		})

		It("should create a department without a manager", func() {
			w := createDepartment(`{"Name":"Quality"}`)

			Expect(w.Code).To(Equal(http.StatusCreated))

			var resp department.Response
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.ManagerID).To(BeNil())
			Expect(resp.Manager).To(BeNil())
		})

		It("should reject an unknown manager reference", func() {
			w := createDepartment(`{"Name":"Production","ManagerID":99999}`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var body map[string]interface{}
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body["message"]).To(Equal("Invalid ManagerID"))
		})

		It("should reject a missing name", func() {
			w := createDepartment(`{"ManagerID":10122353}`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should drop unknown fields instead of failing", func() {
			w := createDepartment(`{"Name":"Production","Bogus":"field"}`)

			Expect(w.Code).To(Equal(http.StatusCreated))
		})
	})

	Describe("Get", func() {
		It("should return 404 for a missing department", func() {
			req := httptest.NewRequest(http.MethodGet, "/departments/42", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("should return 404 for id zero even when departments exist", func() {
			Expect(createDepartment(`{"Name":"Production"}`).Code).To(Equal(http.StatusCreated))

			req := httptest.NewRequest(http.MethodGet, "/departments/0", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Update", func() {
		var created department.Response

		BeforeEach(func() {
			w := createDepartment(`{"Name":"Production","ManagerID":10122353}`)
			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
		})

		It("should overwrite only the provided fields", func() {
			req := httptest.NewRequest(http.MethodPut, "/departments/"+itoa(created.DepartmentID), bytes.NewBufferString(`{"Name":"Post-Production"}`))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp department.Response
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Name).To(Equal("Post-Production"))
			Expect(resp.ManagerID).NotTo(BeNil())
			Expect(*resp.ManagerID).To(Equal(int64(10122353)))
		})

		It("should check references on the updated manager", func() {
			req := httptest.NewRequest(http.MethodPut, "/departments/"+itoa(created.DepartmentID), bytes.NewBufferString(`{"ManagerID":99999}`))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject a zero manager reference", func() {
			req := httptest.NewRequest(http.MethodPut, "/departments/"+itoa(created.DepartmentID), bytes.NewBufferString(`{"ManagerID":0}`))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var body map[string]interface{}
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body["message"]).To(Equal("Invalid ManagerID"))
		})

		It("should return 404 when updating a missing department", func() {
			req := httptest.NewRequest(http.MethodPut, "/departments/9999", bytes.NewBufferString(`{"Name":"Ghost"}`))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Delete", func() {
		It("should delete an existing department", func() {
			w := createDepartment(`{"Name":"Production"}`)
			var created department.Response
			Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())

			req := httptest.NewRequest(http.MethodDelete, "/departments/"+itoa(created.DepartmentID), nil)
			dw := httptest.NewRecorder()
			router.ServeHTTP(dw, req)

			Expect(dw.Code).To(Equal(http.StatusOK))

			gw := httptest.NewRecorder()
			router.ServeHTTP(gw, httptest.NewRequest(http.MethodGet, "/departments/"+itoa(created.DepartmentID), nil))
			Expect(gw.Code).To(Equal(http.StatusNotFound))
		})

		It("should return 404 for a missing department", func() {
			req := httptest.NewRequest(http.MethodDelete, "/departments/42", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
