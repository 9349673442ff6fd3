package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/config"
	appHTTP "github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/handler/http"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/pkg/cron"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/pkg/database"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/pkg/jwt"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/pkg/sse"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/repository/postgresql"
	attendanceService "github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/service/attendance"
	serviceAuth "github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/service/auth"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/service/directory"
	reportService "github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/service/report"
	scheduleService "github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	customerRepo := postgresql.NewCustomerRepository(db)
	vendorRepo := postgresql.NewVendorRepository(db)
	vendorPaymentRepo := postgresql.NewVendorPaymentRepository(db)
	shiftRepo := postgresql.NewShiftAssignmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()

	authSvc := serviceAuth.NewAuthService(userRepo, jwtService)
	employeeSvc := directory.NewEmployeeService(employeeRepo)
	customerSvc := directory.NewCustomerService(customerRepo)
	vendorSvc := directory.NewVendorService(vendorRepo, vendorPaymentRepo)
	scheduleSvc := scheduleService.NewScheduleService(shiftRepo, employeeRepo, customerRepo, hub)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, vendorRepo, vendorPaymentRepo, shiftRepo, hub)
	reportSvc := reportService.NewReportService(reportRepo, customerRepo)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		appHTTP.NewAuthHandler(authSvc, jwtService),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewScheduleHandler(scheduleSvc),
		appHTTP.NewReportHandler(reportSvc),
		appHTTP.NewDirectoryHandler(employeeSvc, customerSvc, vendorSvc),
		appHTTP.NewEventsHandler(hub),
	)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("shift-lifecycle", 5*time.Minute, scheduleSvc.AdvanceLifecycle)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down...")
	if err := server.Close(); err != nil {
		slog.Error("Server close failed", "error", err)
	}
}
