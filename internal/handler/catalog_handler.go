package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kritsada-dev/tickethub/internal/response"
	"github.com/kritsada-dev/tickethub/internal/service"
)

// CatalogHandler handles category and venue listing requests
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListCategories handles GET /api/v1/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list categories"))
		return
	}

	c.JSON(http.StatusOK, response.Success(categories))
}

// ListVenues handles GET /api/v1/venues
func (h *CatalogHandler) ListVenues(c *gin.Context) {
	venues, err := h.catalogService.ListVenues(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list venues"))
		return
	}

	c.JSON(http.StatusOK, response.Success(venues))
}
