package http

import (
	"log/slog"
	"os"

	"github.com/fieldteam/attendance-backend-go/internal/config"
	"github.com/fieldteam/attendance-backend-go/internal/handler/http/middleware"
	"github.com/fieldteam/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	activityHandler ActivityHandler,
	directoryHandler DirectoryHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
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
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employee-activity", func(r chi.Router) {
				r.Get("/activities", activityHandler.ListActivities)
				r.Get("/summary", activityHandler.Summary)
				r.Get("/employees", directoryHandler.ListEmployees)
				r.Get("/subordinates", directoryHandler.ListSubordinates)
				r.Get("/attendance-overview", attendanceHandler.Overview)
				r.Get("/absentees", attendanceHandler.Absentees)
				r.Get("/employee-reports/{employeeID}", attendanceHandler.EmployeeReport)

				r.Route("/mom", func(r chi.Router) {
					r.Get("/", activityHandler.ListMinutes)
					r.Post("/", activityHandler.CreateMinutes)
					r.Get("/prefill", activityHandler.PrefillMinutes)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/balance", leaveHandler.Balance)
				r.Post("/apply", leaveHandler.Apply)
				r.Get("/history", leaveHandler.History)

				// Approving roles only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Get("/approvals", leaveHandler.ApprovalsQueue)
					r.Post("/approve/{applicationID}", leaveHandler.Decide)
				})
			})
		})
	})
	return r
}
