package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	env string,
	analyticsHandler AnalyticsHandler,
	employeeHandler EmployeeHandler,
	absenceHandler AbsenceHandler,
	holidayHandler HolidayHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "pointage-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
		r.Route("/analytics", func(r chi.Router) {
			r.Get("/monthly", analyticsHandler.GetMonthlyAnalytics)
			r.Get("/monthly/export", analyticsHandler.ExportMonthlyAnalytics)
			r.Get("/rollup", analyticsHandler.GetRollup)
		})

		r.Get("/alerts/daily", analyticsHandler.GetDailyAlerts)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Get("/departments", employeeHandler.ListDepartments)
			r.Get("/{matricule}", employeeHandler.GetEmployee)
		})

		r.Route("/absences", func(r chi.Router) {
			r.Get("/", absenceHandler.ListAbsences)
			r.Post("/", absenceHandler.CreateAbsence)
			r.Post("/import", absenceHandler.ImportAbsences)
			r.Get("/version", absenceHandler.GetVersion)
			r.Route("/types", func(r chi.Router) {
				r.Get("/", absenceHandler.ListTypes)
				r.Post("/", absenceHandler.CreateType)
			})
			r.Put("/{id}", absenceHandler.UpdateAbsence)
			r.Delete("/{id}", absenceHandler.DeleteAbsence)
		})

		r.Get("/holidays", holidayHandler.ListHolidays)
	})
	return r
}
