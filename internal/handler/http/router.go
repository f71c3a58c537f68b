package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/paygrid-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/paygrid-hr/payroll-backend-go/internal/pkg/jwt"
)

// Handlers groups the per-area HTTP handlers wired into the router.
type Handlers struct {
	Shift      ShiftHandler
	Employee   EmployeeHandler
	Master     MasterHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Component  ComponentHandler
	Payroll    PayrollHandler
}

func NewRouter(jwtService jwt.Service, logger *slog.Logger, h Handlers) *chi.Mux {
	r := chi.NewRouter()

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

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Master.ListDepartments)
				r.Get("/{id}", h.Master.GetDepartment)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreateDepartment)
					r.Put("/{id}", h.Master.UpdateDepartment)
					r.Delete("/{id}", h.Master.DeleteDepartment)
				})
			})

			r.Route("/designations", func(r chi.Router) {
				r.Get("/", h.Master.ListDesignations)
				r.Get("/{id}", h.Master.GetDesignation)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreateDesignation)
					r.Put("/{id}", h.Master.UpdateDesignation)
					r.Delete("/{id}", h.Master.DeleteDesignation)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Shift.List)
				r.Get("/{id}", h.Shift.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Shift.Create)
					r.Put("/{id}", h.Shift.Update)
					r.Delete("/{id}", h.Shift.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Get("/{id}", h.Attendance.Get)
				r.Post("/", h.Attendance.Mark)
				r.Post("/bulk", h.Attendance.BulkMark)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}", h.Attendance.Update)
					r.Delete("/{id}", h.Attendance.Delete)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Get("/{id}", h.Leave.Get)
				r.Post("/", h.Leave.Apply)
				r.Post("/{id}/cancel", h.Leave.Cancel)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
					r.Delete("/{id}", h.Leave.Delete)
				})
			})

			r.Route("/components", func(r chi.Router) {
				r.Get("/", h.Component.List)
				r.Get("/{id}", h.Component.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Component.Create)
					r.Put("/{id}", h.Component.Update)
					r.Delete("/{id}", h.Component.Delete)
					r.Get("/cost-analysis", h.Component.CostAnalysis)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Get("/", h.Payroll.List)
				r.Get("/{id}", h.Payroll.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/generate", h.Payroll.Generate)
					r.Post("/generate-bulk", h.Payroll.GenerateBulk)
					r.Post("/{id}/approve", h.Payroll.Approve)
					r.Post("/{id}/pay", h.Payroll.MarkPaid)
					r.Post("/{id}/cancel", h.Payroll.Cancel)
					r.Delete("/{id}", h.Payroll.Delete)
					r.Get("/summary", h.Payroll.Summary)
				})
			})
		})
	})

	return r
}
