package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/paygrid-hr/payroll-backend-go/internal/config"
	appHTTP "github.com/paygrid-hr/payroll-backend-go/internal/handler/http"
	"github.com/paygrid-hr/payroll-backend-go/internal/pkg/cron"
	"github.com/paygrid-hr/payroll-backend-go/internal/pkg/database"
	"github.com/paygrid-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/paygrid-hr/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/paygrid-hr/payroll-backend-go/internal/service/attendance"
	componentService "github.com/paygrid-hr/payroll-backend-go/internal/service/component"
	employeeService "github.com/paygrid-hr/payroll-backend-go/internal/service/employee"
	leaveService "github.com/paygrid-hr/payroll-backend-go/internal/service/leave"
	masterService "github.com/paygrid-hr/payroll-backend-go/internal/service/master"
	payrollService "github.com/paygrid-hr/payroll-backend-go/internal/service/payroll"
	shiftService "github.com/paygrid-hr/payroll-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := newLogger(cfg.App.LogLevel)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	shiftRepo := postgresql.NewShiftRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	designationRepo := postgresql.NewDesignationRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	componentRepo := postgresql.NewComponentRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	txManager := postgresql.NewTxManager(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	shiftSvc := shiftService.NewShiftService(shiftRepo)
	masterSvc := masterService.NewMasterService(departmentRepo, designationRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, shiftRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, jwt.ActorName)
	componentSvc := componentService.NewComponentService(componentRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(
		txManager,
		payrollRepo,
		employeeRepo,
		attendanceRepo,
		leaveRepo,
		componentRepo,
		jwt.ActorName,
		cfg.Payroll,
		logger,
	)

	handlers := appHTTP.Handlers{
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Master:     appHTTP.NewMasterHandler(masterSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Component:  appHTTP.NewComponentHandler(componentSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
	}

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, employeeRepo, leaveRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(JWTService, logger, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("Starting server", "addr", addr, "env", cfg.App.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("Server stopped", "error", err)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
