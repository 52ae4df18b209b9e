package app

import (
	"fmt"
	"time"

	"jobportal_backend/database"
	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/config"
	"jobportal_backend/internal/handlers"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/routes"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/storage"
	"jobportal_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	tokenIssuer := auth.NewTokenIssuer(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)
	blacklist, err := auth.NewBlacklist(tokenIssuer.TTL())
	if err != nil {
		logger.Fatal("Failed to initialize token blacklist", "error", err)
	}

	serviceContainer := initializeServices(cfg, gormDB, storageInstance, tokenIssuer, blacklist)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(
	cfg *config.Config,
	gormDB *gorm.DB,
	storageInstance storage.Storage,
	tokenIssuer *auth.TokenIssuer,
	blacklist *auth.Blacklist,
) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)

	uploadLimits := services.UploadLimits{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	}

	authService := services.NewAuthService(userRepo, tokenIssuer, blacklist)
	userService := services.NewUserService(userRepo, storageInstance, uploadLimits)
	jobService := services.NewJobService(jobRepo, userRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo, userRepo, storageInstance)

	return &services.ServiceContainer{
		AuthService:        authService,
		UserService:        userService,
		JobService:         jobService,
		ApplicationService: applicationService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:        handlers.NewUserHandler(baseHandler, services.UserService, services.AuthService),
		JobHandler:         handlers.NewJobHandler(baseHandler, services.JobService, services.AuthService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, services.ApplicationService, services.AuthService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.TimeoutMiddleware(time.Duration(cfg.Server.RequestTimeout) * time.Second))
	return router
}
