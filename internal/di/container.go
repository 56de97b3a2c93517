package di

import (
	"github.com/redis/go-redis/v9"

	"github.com/kritsada-dev/tickethub/internal/cache"
	"github.com/kritsada-dev/tickethub/internal/config"
	"github.com/kritsada-dev/tickethub/internal/database"
	"github.com/kritsada-dev/tickethub/internal/handler"
	"github.com/kritsada-dev/tickethub/internal/inventory"
	"github.com/kritsada-dev/tickethub/internal/logger"
	"github.com/kritsada-dev/tickethub/internal/repository"
	"github.com/kritsada-dev/tickethub/internal/service"
	"github.com/kritsada-dev/tickethub/internal/stream"
)

// Container holds all dependencies for the API service
type Container struct {
	// Infrastructure
	DB        *database.PostgresDB
	Redis     *redis.Client
	Publisher stream.Publisher

	// Repositories
	EventRepo    repository.EventRepository
	CategoryRepo repository.CategoryRepository
	VenueRepo    repository.VenueRepository

	// Core
	Analyzer *inventory.Analyzer

	// Services
	EventService   service.EventService
	CatalogService service.CatalogService

	// Handlers
	HealthHandler  *handler.HealthHandler
	EventHandler   *handler.EventHandler
	CatalogHandler *handler.CatalogHandler
}

// ContainerConfig contains infrastructure for building the container
type ContainerConfig struct {
	Config    *config.Config
	DB        *database.PostgresDB
	Redis     *redis.Client
	Publisher stream.Publisher
	Logger    *logger.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:        cfg.DB,
		Redis:     cfg.Redis,
		Publisher: cfg.Publisher,
	}

	// Repositories
	c.EventRepo = repository.NewPostgresEventRepository(c.DB.Pool())
	c.CategoryRepo = repository.NewPostgresCategoryRepository(c.DB.Pool())
	c.VenueRepo = repository.NewPostgresVenueRepository(c.DB.Pool())

	// Core analyzer, configured from deployment settings
	c.Analyzer = inventory.NewAnalyzer(inventory.Config{
		ServiceFeePercent: cfg.Config.Inventory.ServiceFeePercent,
		LowStockThreshold: cfg.Config.Inventory.LowStockThreshold,
		Locale:            cfg.Config.Inventory.Locale,
		Currency:          cfg.Config.Inventory.Currency,
	})

	// Cache
	var summaryCache *cache.SummaryCache
	if c.Redis != nil {
		summaryCache = cache.NewSummaryCache(c.Redis, cfg.Config.Redis.SummaryTTL)
	}

	// Services
	c.EventService = service.NewEventService(c.EventRepo, c.Analyzer, summaryCache, c.Publisher, cfg.Logger)
	c.CatalogService = service.NewCatalogService(c.CategoryRepo, c.VenueRepo)

	// Handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB)
	c.EventHandler = handler.NewEventHandler(c.EventService)
	c.CatalogHandler = handler.NewCatalogHandler(c.CatalogService)

	return c
}
