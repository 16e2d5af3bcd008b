package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"shop-service/app/port"
	"shop-service/app/rest/handlers"
	custommw "shop-service/app/rest/middleware"
	appvalidator "shop-service/app/utils/validator"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger        *slog.Logger
	AuthUsecase   port.AuthUsecase
	UserUsecase   port.UserUsecase
	ItemUsecase   port.ItemUsecase
	BasketUsecase port.BasketUsecase
	Database      handlers.DatabaseChecker
	EnableDebug   bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug
	e.Validator = appvalidator.New()

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.Logger)
	userHandler := handlers.NewUserHandler(config.UserUsecase, config.Logger)
	itemHandler := handlers.NewItemHandler(config.ItemUsecase, config.Logger)
	basketHandler := handlers.NewBasketHandler(config.BasketUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Database, config.Logger)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.AuthUsecase, config.Logger)

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Authentication endpoints
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	authProtected := auth.Group("")
	authProtected.Use(authMiddleware.RequireAuth())
	authProtected.GET("/me", authHandler.Me)

	// User profiles
	users := v1.Group("/users")
	users.Use(authMiddleware.RequireAuth())
	users.GET("/:userId", userHandler.Get)

	// Catalog endpoints (public reads)
	shop := v1.Group("/shop")
	shop.GET("/items", itemHandler.List)
	shop.GET("/items/:itemId", itemHandler.Get)
	shop.GET("/search", itemHandler.Search)

	// Catalog management
	shopManage := v1.Group("/shop")
	shopManage.Use(authMiddleware.RequireAuth())
	shopManage.POST("/items", itemHandler.Create)
	shopManage.POST("/items/seed", itemHandler.Seed)
	shopManage.PUT("/items/:itemId", itemHandler.Update)
	shopManage.DELETE("/items/:itemId", itemHandler.Delete)

	// Basket endpoints (always authenticated)
	basket := v1.Group("/shop/basket")
	basket.Use(authMiddleware.RequireAuth())
	basket.GET("", basketHandler.List)
	basket.POST("", basketHandler.Add)
	basket.DELETE("", basketHandler.Clear)
	basket.PUT("/:lineId", basketHandler.UpdateQuantity)
	basket.DELETE("/:lineId", basketHandler.Remove)

	return e
}
