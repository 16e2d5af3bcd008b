package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"shop-service/app/config"
	"shop-service/app/driver/postgres"
	"shop-service/app/driver/token"
	"shop-service/app/port"
	"shop-service/app/rest"
	"shop-service/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB       *postgres.DB
	Tokens   port.TokenService
	Sessions port.SessionRepository

	// Usecases
	AuthUsecase   port.AuthUsecase
	UserUsecase   port.UserUsecase
	ItemUsecase   port.ItemUsecase
	BasketUsecase port.BasketUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize database connection
	var err error
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize token service
	container.Tokens = token.NewJWTService(token.JWTConfig{
		Secret: cfg.TokenSecret,
		TTL:    cfg.TokenTTL,
	})

	// Initialize repositories
	pool := container.DB.Pool()
	userRepository := postgres.NewUserRepository(pool, logger)
	sessionRepository := postgres.NewSessionRepository(pool, logger)
	container.Sessions = sessionRepository
	itemRepository := postgres.NewItemRepository(pool, logger)
	basketRepository := postgres.NewBasketRepository(pool, logger)

	// Initialize usecases
	container.AuthUsecase = usecase.NewAuthUseCase(userRepository, sessionRepository, container.Tokens, cfg.SessionTimeout, logger)
	container.UserUsecase = usecase.NewUserUseCase(userRepository, logger)
	container.ItemUsecase = usecase.NewItemUseCase(itemRepository, logger)
	container.BasketUsecase = usecase.NewBasketUseCase(basketRepository, itemRepository, logger)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:        c.Logger,
		AuthUsecase:   c.AuthUsecase,
		UserUsecase:   c.UserUsecase,
		ItemUsecase:   c.ItemUsecase,
		BasketUsecase: c.BasketUsecase,
		Database:      c.DB,
		EnableDebug:   c.Config.LogLevel == "debug",
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("Full API router created")
	return router
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("Container closed successfully")
	return nil
}
