package main

import (
	"fmt"
	"net/http"

	"github.com/softhouse-dev/backoffice-backend-go/internal/config"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/salary"
	appHTTP "github.com/softhouse-dev/backoffice-backend-go/internal/handler/http"
	"github.com/softhouse-dev/backoffice-backend-go/internal/pkg/database"
	"github.com/softhouse-dev/backoffice-backend-go/internal/pkg/jwt"
	"github.com/softhouse-dev/backoffice-backend-go/internal/repository/postgresql"
	authService "github.com/softhouse-dev/backoffice-backend-go/internal/service/auth"
	dashboardService "github.com/softhouse-dev/backoffice-backend-go/internal/service/dashboard"
	employeeService "github.com/softhouse-dev/backoffice-backend-go/internal/service/employee"
	fixedCostService "github.com/softhouse-dev/backoffice-backend-go/internal/service/fixedcost"
	projectService "github.com/softhouse-dev/backoffice-backend-go/internal/service/project"
	reportService "github.com/softhouse-dev/backoffice-backend-go/internal/service/report"
	salaryService "github.com/softhouse-dev/backoffice-backend-go/internal/service/salary"
	timesheetService "github.com/softhouse-dev/backoffice-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	fixedCostRepo := postgresql.NewFixedCostRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	calculator := salaryService.NewCalculator(salary.DefaultRules())
	reconciler := reportService.NewReconciler()

	authSvc := authService.NewAuthService(userRepo, companyRepo, JWTService)
	salarySvc := salaryService.NewSalaryService(calculator)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, calculator)
	projectSvc := projectService.NewProjectService(projectRepo, employeeRepo)
	timesheetSvc := timesheetService.NewTimesheetService(timesheetRepo, projectRepo)
	reportSvc := reportService.NewReportService(db, reportRepo, employeeRepo, timesheetRepo, projectRepo, reconciler)
	fixedCostSvc := fixedCostService.NewFixedCostService(fixedCostRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, reportRepo, timesheetRepo, fixedCostRepo, projectRepo, reconciler)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	projectHandler := appHTTP.NewProjectHandler(projectSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	fixedCostHandler := appHTTP.NewFixedCostHandler(fixedCostSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		salaryHandler,
		employeeHandler,
		projectHandler,
		timesheetHandler,
		reportHandler,
		fixedCostHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
