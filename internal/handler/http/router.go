package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/peopledesk/hrops-backend-go/internal/handler/http/middleware"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Employee   EmployeeHandler
	Holiday    HolidayHandler
	Leave      LeaveHandler
	Report     ReportHandler
	Salary     SalaryHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, frontendURL string, env string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrops-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
			r.Post("/register", h.Auth.RegisterEmployee)
			r.Post("/register/admin", h.Auth.RegisterAdmin)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Post("/recess/start", h.Attendance.StartRecess)
				r.Post("/recess/end", h.Attendance.EndRecess)
				r.Get("/status", h.Attendance.CurrentStatus)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}", h.Attendance.Update)
					r.Get("/late-check-ins", h.Attendance.ListLateCheckIns)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", h.Employee.Me)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Employee.List)
					r.Get("/{id}", h.Employee.Get)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.ListPredefined)
				r.Route("/selected", func(r chi.Router) {
					r.Get("/", h.Holiday.GetSelected)
					r.Post("/", h.Holiday.Select)
					r.Delete("/{entryID}", h.Holiday.DeleteSelectedEntry)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Holiday.AddPredefined)
					r.Delete("/{id}", h.Holiday.DeletePredefined)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/my", h.Leave.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Leave.List)
					r.Patch("/{id}/status", h.Leave.UpdateStatus)
					r.Delete("/{id}", h.Leave.Delete)
				})
			})

			// Admin only
			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/daily", h.Report.DailySummary)
				r.Get("/present", h.Report.PresentList)
				r.Get("/absent", h.Report.AbsenteeList)
				r.Route("/employees/{employeeID}", func(r chi.Router) {
					r.Get("/monthly", h.Report.MonthlySummary)
					r.Get("/absentee-deduction", h.Report.AbsenteeDeduction)
					r.Get("/half-days", h.Report.HalfDays)
				})
			})

			// Admin only
			r.Route("/salaries", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Salary.List)
				r.Post("/", h.Salary.Add)
				r.Post("/with-deductions", h.Salary.AddWithDeductions)
				r.Put("/{id}", h.Salary.Update)
				r.Delete("/{id}", h.Salary.Delete)
				r.Get("/{id}/deductions", h.Salary.GetDeductions)
				r.Route("/employees/{employeeID}", func(r chi.Router) {
					r.Get("/", h.Salary.ListByEmployee)
					r.Get("/late-deduction", h.Salary.LateCheckInDeduction)
				})
			})
		})
	})
	return r
}
