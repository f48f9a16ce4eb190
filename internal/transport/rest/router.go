package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/taskmetrics/task-incentive/internal/auth"
	"github.com/taskmetrics/task-incentive/internal/department"
	"github.com/taskmetrics/task-incentive/internal/employee"
	"github.com/taskmetrics/task-incentive/internal/incentive"
	"github.com/taskmetrics/task-incentive/internal/performance"
	"github.com/taskmetrics/task-incentive/internal/taskrecord"
	"github.com/taskmetrics/task-incentive/internal/taskreport"
	"github.com/taskmetrics/task-incentive/internal/tasktype"
	"github.com/taskmetrics/task-incentive/internal/transport/middleware"
	"github.com/taskmetrics/task-incentive/internal/transport/swagger"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth        *auth.Handler
	Employee    *employee.Handler
	Department  *department.Handler
	TaskType    *tasktype.Handler
	TaskRecord  *taskrecord.Handler
	TaskReport  *taskreport.Handler
	Performance *performance.Handler
	Incentive   *incentive.Handler
}

// RegisterAllRoutes wires the full route table: public auth endpoints, the
// authenticated /api/user subtree open to every role, and the /api/admin
// subtree restricted by the capability table.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, rbac *auth.RBACAuthorization, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/register", h.Auth.Register)
			sr.Post("/login", h.Auth.Login)
		})

		r.Route("/user", func(ur chi.Router) {
			ur.Use(h.Auth.AuthMiddleware)
			ur.Use(rbac.RequireGroup(auth.GroupUser))

			ur.Route("/employees", func(er chi.Router) {
				er.Get("/", h.Employee.List)
				er.Post("/", h.Employee.Create)
				er.Get("/byUserId/{userId}", h.Employee.GetByUserID)
				er.Get("/{id}", h.Employee.Get)
				er.Put("/{id}", h.Employee.Update)
				er.Delete("/{id}", h.Employee.Delete)
			})

			ur.Route("/taskrecords", func(tr chi.Router) {
				tr.Get("/", h.TaskRecord.List)
				tr.Post("/", h.TaskRecord.Create)
				tr.Get("/employee/{employeeID}", h.TaskRecord.ListByEmployee)
				tr.Get("/{id}", h.TaskRecord.Get)
				tr.Put("/{id}", h.TaskRecord.Update)
				tr.Delete("/{id}", h.TaskRecord.Delete)
			})

			ur.Route("/taskreports", func(tr chi.Router) {
				tr.Get("/", h.TaskReport.List)
				tr.Post("/", h.TaskReport.Create)
				tr.Get("/employee/{employeeID}", h.TaskReport.ListByEmployee)
				tr.Get("/{id}", h.TaskReport.Get)
				tr.Get("/{id}/pdf", h.TaskReport.ExportPDF)
				tr.Put("/{id}", h.TaskReport.Update)
				tr.Delete("/{id}", h.TaskReport.Delete)
			})
		})

		r.Route("/admin", func(ar chi.Router) {
			ar.Use(h.Auth.AuthMiddleware)
			ar.Use(rbac.RequireGroup(auth.GroupAdmin))

			ar.Route("/departments", func(dr chi.Router) {
				dr.Get("/", h.Department.List)
				dr.Post("/", h.Department.Create)
				dr.Get("/{id}", h.Department.Get)
				dr.Put("/{id}", h.Department.Update)
				dr.Delete("/{id}", h.Department.Delete)
			})

			ar.Route("/tasktypes", func(tr chi.Router) {
				tr.Get("/", h.TaskType.List)
				tr.Post("/", h.TaskType.Create)
				tr.Get("/{id}", h.TaskType.Get)
				tr.Put("/{id}", h.TaskType.Update)
				tr.Delete("/{id}", h.TaskType.Delete)
			})

			ar.Route("/performanceratings", func(pr chi.Router) {
				pr.Get("/", h.Performance.List)
				pr.Post("/", h.Performance.Create)
				pr.Get("/{id}", h.Performance.Get)
				pr.Put("/{id}", h.Performance.Update)
				pr.Delete("/{id}", h.Performance.Delete)
			})

			ar.Route("/incentivepayments", func(ir chi.Router) {
				ir.Get("/", h.Incentive.List)
				ir.Post("/", h.Incentive.Create)
				ir.Get("/{id}", h.Incentive.Get)
				ir.Put("/{id}", h.Incentive.Update)
				ir.Delete("/{id}", h.Incentive.Delete)
			})
		})
	})
}
