package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/uptrace/bun"

	"github.com/mercadito/catalog-api/internal/api/handler"
	"github.com/mercadito/catalog-api/internal/api/middleware"
	"github.com/mercadito/catalog-api/internal/core/ports"
	"github.com/mercadito/catalog-api/internal/core/service"
	bunstore "github.com/mercadito/catalog-api/internal/infrastructure/db/bun"
	redisinfra "github.com/mercadito/catalog-api/internal/infrastructure/db/redis"
	"github.com/mercadito/catalog-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; Redis-backed features are then disabled.
func NewRouter(db *bun.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	return newRouter(db, rdb, cfg, log, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

// newRouter takes the metrics registry as a parameter so tests can build
// more than one router without colliding on the global registry.
func newRouter(db *bun.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, reg prometheus.Registerer, gatherer prometheus.Gatherer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "catalog",
		Registerer: reg,
	}))

	// --- Dependencies ---
	userRepo := bunstore.NewUserRepository(db)
	storeRepo := bunstore.NewStoreRepository(db)
	itemRepo := bunstore.NewItemRepository(db)

	var throttle ports.LoginThrottle
	if rdb != nil {
		throttle = redisinfra.NewLoginThrottle(rdb)
	}

	tokenService := service.NewTokenService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, throttle, log)
	storeService := service.NewStoreService(storeRepo, log)
	itemService := service.NewItemService(itemRepo, storeRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	storeHandler := handler.NewStoreHandler(storeService)
	itemHandler := handler.NewItemHandler(itemService)

	protected := middleware.Auth(tokenService)

	// itemReadGuard implements the per-route policy choice: item reads are
	// protected unless PUBLIC_ITEM_READS is set.
	itemReadGuard := []echo.MiddlewareFunc{protected}
	if cfg.PublicItemReads {
		itemReadGuard = nil
	}

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, protected)

	// --- Store routes (reads public) ---
	e.GET("/stores", storeHandler.List)
	e.GET("/store/:name", storeHandler.Get)
	e.POST("/store/:name", storeHandler.Create, protected)
	e.DELETE("/store/:name", storeHandler.Delete, protected)

	// --- Item routes ---
	e.GET("/items", itemHandler.List, itemReadGuard...)
	e.GET("/item/:name", itemHandler.Get, itemReadGuard...)
	e.POST("/item/:name", itemHandler.Create, protected)
	e.PUT("/item/:name", itemHandler.Update, protected)
	e.DELETE("/item/:name", itemHandler.Delete, protected)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
