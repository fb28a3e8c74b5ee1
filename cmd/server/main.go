package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/medibook/backend-go/internal/api"
	"github.com/medibook/backend-go/internal/config"
	"github.com/medibook/backend-go/internal/database"
	"github.com/medibook/backend-go/internal/database/listcache"
	"github.com/medibook/backend-go/internal/database/repository"
	"github.com/medibook/backend-go/internal/database/service"
	"github.com/medibook/backend-go/internal/handler"
	"github.com/medibook/backend-go/internal/identity"
	"github.com/medibook/backend-go/internal/logger"
	"github.com/medibook/backend-go/internal/middleware"
)

func main() {
	// 1. Config (.env is optional outside local development)
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded environment from .env")
	}
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [Go] Starting medibook backend...",
		"environment", cfg.AppEnv,
	)

	if cfg.AdminEmail == "" {
		appLogger.Warn("⚠️ ADMIN_EMAIL not set, admin view is disabled")
	}

	// 3. Connect to Database
	if err := database.ConnectDatabase(cfg, appLogger); err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	db := database.GetDatabase()

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)

	// 5. Initialize List Cache
	cache, err := listcache.New(cfg, appLogger)
	if err != nil {
		appLogger.Warn("⚠️ Failed to connect to Redis, list caching disabled", "error", err)
		// Continue without Redis - every list read goes to Postgres
	}
	defer cache.Close()

	// 6. Initialize Services
	userService := service.NewUserService(userRepo, appLogger)
	doctorService := service.NewDoctorService(doctorRepo, cache, cfg, appLogger)
	appointmentService := service.NewAppointmentService(appointmentRepo, userService, cache, appLogger)

	// 7. Initialize Handlers & Middleware
	identityProvider := identity.NewJWTProvider(cfg)
	authMiddleware := middleware.NewAuthMiddleware(identityProvider, appLogger)

	pageHandler := handler.NewPageHandler(cfg, appLogger)
	planHandler := handler.NewPlanHandler()
	userHandler := handler.NewUserHandler(userService, appLogger)
	doctorHandler := handler.NewDoctorHandler(doctorService, appLogger)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService, appLogger)

	r := api.SetupRouter(cfg, pageHandler, planHandler, userHandler, doctorHandler, appointmentHandler, authMiddleware)

	// 8. Start HTTP Server
	addr := fmt.Sprintf(":%s", cfg.ApiServicePort)
	appLogger.Info("🌍 [Go] HTTP Server running on port...", "port", addr)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	}
}
