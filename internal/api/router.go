package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saluimoveis/admin-api/internal/api/handler"
	"github.com/saluimoveis/admin-api/internal/api/middleware"
	"github.com/saluimoveis/admin-api/internal/core/ratelimit"
	"github.com/saluimoveis/admin-api/internal/core/service"
	"github.com/saluimoveis/admin-api/internal/core/token"
	"github.com/saluimoveis/admin-api/internal/infrastructure/config"
	mongodb "github.com/saluimoveis/admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/saluimoveis/admin-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
	}))
	e.Use(echoprometheus.NewMiddleware("adminapi"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	propertyRepo := mongodb.NewPropertyRepository(db)
	contactRepo := mongodb.NewContactRepository(db)
	brokerRepo := mongodb.NewBrokerRepository(db)
	importLogRepo := mongodb.NewImportLogRepository(db)
	favoriteRepo := mongodb.NewFavoriteRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	dashboardCache := redisdb.NewDashboardCache(rdb, cfg.Redis.CacheTTL)

	// --- Services ---
	limiter := ratelimit.New(cfg.Auth.Window, cfg.Auth.MaxTries)
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(userRepo, limiter, tokens, log)
	userService := service.NewUserService(userRepo, log)
	propertyService := service.NewPropertyService(propertyRepo, favoriteRepo, notificationRepo, log)
	contactService := service.NewContactService(contactRepo, log)
	brokerService := service.NewBrokerService(brokerRepo, log)
	dashboardService := service.NewDashboardService(userRepo, propertyRepo, contactRepo, brokerRepo, dashboardCache, log)
	importLogService := service.NewImportLogService(importLogRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	contactHandler := handler.NewContactHandler(contactService)
	brokerHandler := handler.NewBrokerHandler(brokerService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	cronHandler := handler.NewCronHandler(importLogService, cfg.CronSecret)
	healthHandler := handler.NewHealthHandler(cfg.AppName, cfg.AppVersion)
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	requireAdmin := middleware.RequireAdmin(authService)

	// --- Public routes ---
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/auth/me", authHandler.Me, requireAdmin)

	// --- Admin routes (bearer token) ---
	admin := e.Group("/api/admin", requireAdmin)
	admin.GET("/dashboard", dashboardHandler.Get)
	admin.GET("/users", userHandler.List)
	admin.GET("/users/:id", userHandler.Get)
	admin.DELETE("/users/:id", userHandler.Delete)
	admin.GET("/properties", propertyHandler.List)
	admin.PATCH("/properties/:id/toggle-active", propertyHandler.ToggleActive)
	admin.PATCH("/properties/:id/toggle-featured", propertyHandler.ToggleFeatured)
	admin.GET("/contacts", contactHandler.List)
	admin.PATCH("/contacts/:id/status", contactHandler.UpdateStatus)
	admin.GET("/brokers", brokerHandler.List)
	admin.PATCH("/brokers/:id/toggle-active", brokerHandler.ToggleActive)
	admin.GET("/import-logs", cronHandler.ImportLogs)

	// --- Cron probe (shared secret, not bearer) ---
	e.GET("/api/admin/cron/status", cronHandler.Status)

	return e
}
