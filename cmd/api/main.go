package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/abghifareihand/overtime-connect-backend/internal/config"
	appHTTP "github.com/abghifareihand/overtime-connect-backend/internal/handler/http"
	"github.com/abghifareihand/overtime-connect-backend/internal/pkg/database"
	"github.com/abghifareihand/overtime-connect-backend/internal/pkg/email"
	"github.com/abghifareihand/overtime-connect-backend/internal/pkg/jwt"
	"github.com/abghifareihand/overtime-connect-backend/internal/pkg/storage"
	"github.com/abghifareihand/overtime-connect-backend/internal/repository/postgresql"
	authService "github.com/abghifareihand/overtime-connect-backend/internal/service/auth"
	overtimeService "github.com/abghifareihand/overtime-connect-backend/internal/service/overtime"
	userService "github.com/abghifareihand/overtime-connect-backend/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	otpRepo := postgresql.NewPasswordOTPRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}

	authSvc := authService.NewAuthService(db, userRepo, otpRepo, refreshTokenRepo, jwtService, emailService)
	userSvc := userService.NewUserService(userRepo, fileStorage)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)

	router := appHTTP.NewRouter(cfg, jwtService, authHandler, userHandler, overtimeHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
