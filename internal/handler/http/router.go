package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/staffdir/staffdir-backend-go/internal/config"
)

func NewRouter(cfg *config.Config, employeeHandler EmployeeHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffdir-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Get("/active", employeeHandler.ListActiveEmployees)
			r.Get("/search", employeeHandler.SearchEmployees)
			r.Get("/next-id", employeeHandler.GetNextEmployeeID)
			r.Get("/count", employeeHandler.CountActiveByPosition)
			r.Get("/hired", employeeHandler.ListEmployeesHiredInYear)
			r.Get("/earning", employeeHandler.ListEmployeesEarningAtLeast)
			r.Get("/payroll/total", employeeHandler.GetTotalPayroll)
			r.Get("/position/{position}", employeeHandler.ListEmployeesByPosition)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetEmployee)
				r.Put("/", employeeHandler.UpdateEmployee)
				r.Delete("/", employeeHandler.DeleteEmployee)
				r.Patch("/deactivate", employeeHandler.DeactivateEmployee)
			})
		})
	})

	return r
}
