package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/shopforge/commerce-api/docs"
	"github.com/shopforge/commerce-api/internal/api/handler"
	"github.com/shopforge/commerce-api/internal/api/middleware"
	"github.com/shopforge/commerce-api/internal/core/domain"
	"github.com/shopforge/commerce-api/internal/core/service"
	"github.com/shopforge/commerce-api/internal/core/token"
	mongodb "github.com/shopforge/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/shopforge/commerce-api/internal/infrastructure/db/redis"
	"github.com/shopforge/commerce-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, issuer *token.Issuer, audit service.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	storeRepo := mongodb.NewStoreRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb)

	authService := service.NewAuthService(userRepo, issuer, limiter, audit, log)
	storeService := service.NewStoreService(storeRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	storeHandler := handler.NewStoreHandler(storeService)

	authGate := middleware.Auth(issuer)
	merchantOnly := middleware.RBAC(domain.RoleMerchant)

	// --- API routes ---
	v1 := e.Group("/api/v1")
	v1.POST("/signup", authHandler.Signup)
	v1.POST("/login", authHandler.Login)
	v1.POST("/createStore", storeHandler.CreateStore, authGate, merchantOnly)
	v1.POST("/createStoreConfig", storeHandler.CreateStoreConfig, authGate, merchantOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
