package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/softhouse-dev/backoffice-backend-go/internal/handler/http/middleware"
	"github.com/softhouse-dev/backoffice-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	salaryHandler SalaryHandler,
	employeeHandler EmployeeHandler,
	projectHandler ProjectHandler,
	timesheetHandler TimesheetHandler,
	reportHandler ReportHandler,
	fixedCostHandler FixedCostHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "backoffice"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Post("/salary/calculate", salaryHandler.Calculate)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Deactivate)
					r.Post("/{id}/reactivate", employeeHandler.Reactivate)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projectHandler.List)
				r.Get("/{id}", projectHandler.GetByID)
				r.Get("/{id}/assignments", projectHandler.ListAssignments)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", projectHandler.Create)
					r.Put("/{id}", projectHandler.Update)
					r.Post("/{id}/assignments", projectHandler.Assign)
					r.Put("/assignments/{assignmentID}", projectHandler.UpdateAssignment)
				})
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Post("/", timesheetHandler.Create)
				r.Put("/{id}", timesheetHandler.Update)
				r.Delete("/{id}", timesheetHandler.Delete)
				r.Get("/employees/{employeeID}", timesheetHandler.ListForEmployeeMonth)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/monthly", reportHandler.ListMonthlyReports)
				r.Get("/monthly/{employeeID}", reportHandler.GetMonthlyReport)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/monthly/hours", reportHandler.SaveMonthlyHours)
					r.Put("/monthly/{employeeID}/actual-cost", reportHandler.UpdateActualCost)
					r.Post("/monthly/propagate", reportHandler.PropagateAllChanges)
				})
			})

			r.Route("/fixed-costs", func(r chi.Router) {
				r.Get("/", fixedCostHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", fixedCostHandler.Create)
					r.Put("/{id}", fixedCostHandler.Update)
					r.Delete("/{id}", fixedCostHandler.Delete)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/kpi", dashboardHandler.GetCompanyKPI)
				r.Get("/top-employees", dashboardHandler.GetTopEmployees)
				r.Get("/project-profitability", dashboardHandler.GetProjectProfitability)
				r.Get("/trends", dashboardHandler.GetProfitTrends)
			})
		})
	})
	return r
}
