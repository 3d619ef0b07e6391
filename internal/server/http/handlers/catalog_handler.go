package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anvilforge/storefront/internal/domain/model"
)

// CatalogHandler serves read-only catalog browse endpoints from the cached
// snapshot.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Components handles GET /api/catalog/components, optionally filtered by the
// category query parameter.
func (h *CatalogHandler) Components(c *gin.Context) {
	components, ok := h.facade.Components(c.Request.Context())
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not loaded"})
		return
	}

	if category := c.Query("category"); category != "" {
		group, found := components[category]
		if !found {
			group = []model.Component{}
		}
		c.JSON(http.StatusOK, gin.H{category: group})
		return
	}
	c.JSON(http.StatusOK, components)
}

// Systems handles GET /api/catalog/systems.
func (h *CatalogHandler) Systems(c *gin.Context) {
	systems, ok := h.facade.Systems(c.Request.Context())
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not loaded"})
		return
	}
	c.JSON(http.StatusOK, systems)
}

// SystemByID handles GET /api/catalog/systems/:id.
func (h *CatalogHandler) SystemByID(c *gin.Context) {
	sys, ok := h.facade.SystemByID(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "system not found"})
		return
	}
	c.JSON(http.StatusOK, sys)
}
