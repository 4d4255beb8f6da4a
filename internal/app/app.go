package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobboard/internal/appErrors"
	"jobboard/internal/config"
	"jobboard/internal/handlers"
	"jobboard/internal/logger"
	"jobboard/internal/middleware"
	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/internal/routes"
	"jobboard/internal/services"
	"jobboard/internal/storage"
	"jobboard/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Resume{},
		&models.Application{},
	); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if cfg.Seed.Demo {
		if err := seedDemoData(gormDB); err != nil {
			logger.Fatal("Failed to seed demo data", "error", err)
		}
	}

	fileStorage, err := storage.New(cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to initialize file storage", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, fileStorage)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, fileStorage storage.Storage) *gin.Engine {
	serviceContainer := initializeServices(gormDB, fileStorage)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(gormDB *gorm.DB, fileStorage storage.Storage) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	resumeRepo := repositories.NewResumeRepository(gormDB)
	appRepo := repositories.NewApplicationRepository(gormDB)
	statsRepo := repositories.NewStatsRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo),
		JobService:         services.NewJobService(jobRepo),
		ApplicationService: services.NewApplicationService(appRepo, jobRepo, resumeRepo),
		ResumeService:      services.NewResumeService(resumeRepo, fileStorage),
		StatsService:       services.NewStatsService(statsRepo),
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, sc.AuthService),
		JobHandler:         handlers.NewJobHandler(baseHandler, sc.JobService, sc.ApplicationService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, sc.ApplicationService),
		ResumeHandler:      handlers.NewResumeHandler(baseHandler, sc.ResumeService),
		StatsHandler:       handlers.NewStatsHandler(baseHandler, sc.StatsService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.NoRoute(func(c *gin.Context) {
		appErrors.HandleError(c, appErrors.NewNotFoundError("Route not found"))
	})
	return router
}
