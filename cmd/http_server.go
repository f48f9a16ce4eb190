package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/taskmetrics/task-incentive/internal"
	"github.com/taskmetrics/task-incentive/internal/auth"
	authpg "github.com/taskmetrics/task-incentive/internal/auth/postgres"
	"github.com/taskmetrics/task-incentive/internal/core/refcheck"
	"github.com/taskmetrics/task-incentive/internal/department"
	departmentpg "github.com/taskmetrics/task-incentive/internal/department/postgres"
	"github.com/taskmetrics/task-incentive/internal/employee"
	employeepg "github.com/taskmetrics/task-incentive/internal/employee/postgres"
	"github.com/taskmetrics/task-incentive/internal/incentive"
	incentivepg "github.com/taskmetrics/task-incentive/internal/incentive/postgres"
	"github.com/taskmetrics/task-incentive/internal/performance"
	performancepg "github.com/taskmetrics/task-incentive/internal/performance/postgres"
	"github.com/taskmetrics/task-incentive/internal/taskrecord"
	taskrecordpg "github.com/taskmetrics/task-incentive/internal/taskrecord/postgres"
	"github.com/taskmetrics/task-incentive/internal/taskreport"
	taskreportpg "github.com/taskmetrics/task-incentive/internal/taskreport/postgres"
	"github.com/taskmetrics/task-incentive/internal/tasktype"
	tasktypepg "github.com/taskmetrics/task-incentive/internal/tasktype/postgres"
	"github.com/taskmetrics/task-incentive/internal/transport/rest"
	"github.com/taskmetrics/task-incentive/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	ORM    *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) {
	cfg := deps.Config

	refs := refcheck.NewChecker(deps.ORM)

	tokens := auth.NewJWTTokenGenerator(cfg.Security.JWTSecret, cfg.Security.TokenDuration)
	authService := auth.NewService(authpg.NewUserRepository(deps.ORM), tokens, cfg.Security.BCryptCost, deps.Logger)
	rbac := auth.NewRBACAuthorization(deps.Logger)

	handlers := rest.Handlers{
		Auth:        auth.NewHandler(authService),
		Employee:    employee.NewHandler(employee.NewService(employeepg.NewEmployeeRepository(deps.ORM), refs, deps.Logger)),
		Department:  department.NewHandler(department.NewService(departmentpg.NewDepartmentRepository(deps.ORM), refs, deps.Logger)),
		TaskType:    tasktype.NewHandler(tasktype.NewService(tasktypepg.NewTaskTypeRepository(deps.ORM), deps.Logger)),
		TaskRecord:  taskrecord.NewHandler(taskrecord.NewService(taskrecordpg.NewTaskRecordRepository(deps.ORM), refs, deps.Logger)),
		TaskReport:  taskreport.NewHandler(taskreport.NewService(taskreportpg.NewTaskReportRepository(deps.ORM), refs, deps.Logger)),
		Performance: performance.NewHandler(performance.NewService(performancepg.NewPerformanceRatingRepository(deps.ORM), refs, deps.Logger)),
		Incentive:   incentive.NewHandler(incentive.NewService(incentivepg.NewIncentivePaymentRepository(deps.ORM), refs, deps.Logger)),
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, handlers, rbac, cfg.Server.AllowedOrigins, deps.Logger)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	orm, err := initORM(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.L(),
		DB:     db,
		ORM:    orm,
		Router: chi.NewRouter(),
	}, nil
}

func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initORM layers gorm over the existing pool so repositories and health
// checks share one set of connections.
func initORM(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
}
