package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"unigig_backend/database"
	"unigig_backend/internal/auth"
	"unigig_backend/internal/cache"
	"unigig_backend/internal/config"
	"unigig_backend/internal/email"
	"unigig_backend/internal/handlers"
	"unigig_backend/internal/logger"
	"unigig_backend/internal/middleware"
	"unigig_backend/internal/repositories"
	"unigig_backend/internal/routes"
	"unigig_backend/internal/services"
	"unigig_backend/internal/validator"
	"unigig_backend/internal/workers"
	"unigig_backend/pkg/apperrors"
	"unigig_backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run поднимает приложение целиком: конфиг, БД, миграции, роутер,
// HTTP-сервер с graceful shutdown по SIGINT/SIGTERM.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	apperrors.SetDebug(cfg.Server.Env != "production")
	auth.InitJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
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

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Migrations applied")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    address,
		Handler: ginRouter,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Фоновая сверка счётчиков популярности.
	userRepo := repositories.NewUserRepository(gormDB)
	popularity := services.NewPopularityService(
		userRepo,
		repositories.NewPostRepository(gormDB),
		repositories.NewApplicationRepository(gormDB),
		repositories.NewSkillCardRepository(gormDB),
	)
	workers.NewPopularityWorker(userRepo, popularity, time.Hour).Start(ctx)

	go func() {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}

// SetupRouter собирает gin-роутер со всеми зависимостями.
// Вынесен отдельно, чтобы httptest мог поднять приложение без Run.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	feedCache := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	var emailProvider email.Provider
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(&email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUser,
			Password: cfg.Email.SMTPPass,
			From:     cfg.Email.FromEmail,
			FromName: cfg.Email.FromName,
			UseTLS:   cfg.Email.UseTLS,
		}, email.NewTemplateManager())
		logger.Info("Email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		emailProvider = email.NewNoopProvider()
		logger.Info("Email disabled, using noop provider")
	}

	wsManager := ws.NewManager()
	go wsManager.Run()

	serviceContainer := services.NewServiceContainer(gormDB, feedCache, wsManager, emailProvider)

	v := validator.New()
	appHandlers := handlers.NewAppHandlers(serviceContainer, v)
	wsHandler := ws.NewHandler(wsManager, serviceContainer.MessageService)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	return ginRouter
}
