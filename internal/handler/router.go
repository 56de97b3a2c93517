package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kritsada-dev/tickethub/internal/config"
	"github.com/kritsada-dev/tickethub/internal/middleware"
)

// RouterConfig holds the handlers and settings needed to build the router
type RouterConfig struct {
	Config         *config.Config
	HealthHandler  *HealthHandler
	EventHandler   *EventHandler
	CatalogHandler *CatalogHandler
}

// NewRouter builds the gin engine with all routes and middleware
func NewRouter(rc *RouterConfig) *gin.Engine {
	if rc.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	router.GET("/health", rc.HealthHandler.Check)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/events", rc.EventHandler.List)
		v1.GET("/events/:slug", rc.EventHandler.Get)
		v1.GET("/categories", rc.CatalogHandler.ListCategories)
		v1.GET("/venues", rc.CatalogHandler.ListVenues)

		admin := v1.Group("/admin")
		admin.Use(middleware.JWTMiddleware(&middleware.JWTConfig{Secret: rc.Config.JWT.Secret}))
		admin.Use(middleware.RequireRole(middleware.RoleAdmin, middleware.RoleOrganizer))
		{
			admin.POST("/events/:id/refresh", rc.EventHandler.Refresh)
		}
	}

	return router
}
