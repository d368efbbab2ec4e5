package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/abghifareihand/overtime-connect-backend/internal/config"
	"github.com/abghifareihand/overtime-connect-backend/internal/handler/http/middleware"
	"github.com/abghifareihand/overtime-connect-backend/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	overtimeHandler OvertimeHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "overtime-connect"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	// Uploaded profile photos
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath))))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/request-otp", authHandler.RequestOTP)
			r.Post("/reset-password", authHandler.ResetPassword)
		})

		// Calculation preview, no account needed and nothing stored.
		r.Post("/calculate-overtime", overtimeHandler.Calculate)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Post("/auth/logout", authHandler.Logout)

			r.Route("/user", func(r chi.Router) {
				r.Get("/", userHandler.GetProfile)
				r.Put("/profile", userHandler.UpdateProfile)
				r.Post("/photo", userHandler.UpdatePhoto)
				r.Put("/email", userHandler.UpdateEmail)
				r.Put("/username", userHandler.UpdateUsername)
				r.Put("/salary", userHandler.UpdateSalary)
				r.Put("/password", userHandler.UpdatePassword)
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Post("/", overtimeHandler.Create)
				r.Get("/{id}", overtimeHandler.Get)
				r.Get("/{id}/details", overtimeHandler.GetDetails)
				r.Delete("/{id}", overtimeHandler.Delete)
			})

			r.Get("/overtime-years", overtimeHandler.ListYears)
			r.Get("/overtime-report", overtimeHandler.Report)
			r.Get("/overtime-report-weekly", overtimeHandler.WeeklyReport)
			r.Get("/overtime-report-monthly", overtimeHandler.MonthlyReport)
			r.Get("/overtime-report-yearly", overtimeHandler.YearlyReport)
			r.Get("/overtime-report-date", overtimeHandler.DateRangeReport)
		})
	})

	return r
}
