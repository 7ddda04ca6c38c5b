package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	employeeHandler EmployeeHandler,
	payslipHandler PayslipHandler,
	jdHandler JobDescriptionHandler,
	notificationHandler NotificationHandler,
	dashboardHandler DashboardHandler,
	documentDir string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-sheepai"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
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

	// Generated PDFs are served straight off disk so the UI can link them.
	fileServer := http.StripPrefix("/static/generated_pdfs/", http.FileServer(http.Dir(documentDir)))
	r.Get("/static/generated_pdfs/*", fileServer.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/employees", func(r chi.Router) {
			r.Post("/", employeeHandler.CreateEmployee)
			r.Get("/", employeeHandler.ListEmployees)
			r.Get("/{id}", employeeHandler.GetEmployee)
		})

		r.Route("/payslips", func(r chi.Router) {
			r.Post("/", payslipHandler.GeneratePayslip)
		})

		r.Route("/job-descriptions", func(r chi.Router) {
			r.Post("/", jdHandler.GenerateJD)
			r.Get("/roles", jdHandler.ListRoles)
		})

		r.Route("/emails", func(r chi.Router) {
			r.Post("/", notificationHandler.SendEmail)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", dashboardHandler.GetOverview)
		})
	})
	return r
}
