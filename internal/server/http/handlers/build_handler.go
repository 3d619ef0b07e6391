package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anvilforge/storefront/internal/domain/model"
	"github.com/anvilforge/storefront/internal/server/http/dto"
)

// BuildHandler manages saved configurator builds.
type BuildHandler struct {
	facade BuildFacade
}

// NewBuildHandler constructs BuildHandler.
func NewBuildHandler(facade BuildFacade) *BuildHandler {
	return &BuildHandler{facade: facade}
}

// Save handles POST /api/builds.
func (h *BuildHandler) Save(c *gin.Context) {
	var req dto.SaveBuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	build, err := h.facade.SaveBuild(c.Request.Context(), model.SavedBuild{
		Name:       req.Name,
		Components: req.Components,
		Price:      req.Price,
	})
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, build)
}

// List handles GET /api/builds.
func (h *BuildHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.SavedBuilds(c.Request.Context()))
}
