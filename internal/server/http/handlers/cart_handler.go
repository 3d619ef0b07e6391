package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/anvilforge/storefront/internal/domain/errors"
	"github.com/anvilforge/storefront/internal/domain/model"
	"github.com/anvilforge/storefront/internal/server/http/dto"
)

// CartHandler manages cart-related endpoints.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.Cart(c.Request.Context()))
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	kind := model.ItemKind(req.Kind)
	if kind != model.ItemKindSystem {
		kind = model.ItemKindComponent
	}

	cart, err := h.facade.AddItem(c.Request.Context(), model.CartItem{
		ID:             req.ID,
		Kind:           kind,
		Name:           req.Name,
		Specs:          req.Specs,
		UnitPrice:      req.Price,
		Quantity:       req.Quantity,
		Customizations: req.Customizations,
		Image:          req.Image,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidItem) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// RemoveItem handles DELETE /api/cart/items.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	var req dto.LineKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cart, err := h.facade.RemoveItem(c.Request.Context(), req.ID, req.Customizations)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// UpdateQuantity handles PATCH /api/cart/items.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req dto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cart, err := h.facade.UpdateQuantity(c.Request.Context(), req.ID, req.Customizations, req.Quantity)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// AdjustLine handles PATCH /api/cart/items/:index, the positional +/- control.
func (h *CartHandler) AdjustLine(c *gin.Context) {
	index, ok := pathIndex(c, "index")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.AdjustLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cart, err := h.facade.UpdateItemAt(c.Request.Context(), index, req.Delta, req.Quantity)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.facade.ClearCart(c.Request.Context()); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, h.facade.Cart(c.Request.Context()))
}

// Count handles GET /api/cart/count.
func (h *CartHandler) Count(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CartCountResponse{Count: h.facade.CartCount(c.Request.Context())})
}

// SaveForLater handles POST /api/cart/save-for-later.
func (h *CartHandler) SaveForLater(c *gin.Context) {
	var req dto.LineKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	item, ok, err := h.facade.SaveForLater(c.Request.Context(), req.ID, req.Customizations)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Saved handles GET /api/cart/saved.
func (h *CartHandler) Saved(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.SavedItems(c.Request.Context()))
}

// Restore handles POST /api/cart/saved/restore.
func (h *CartHandler) Restore(c *gin.Context) {
	var req dto.LineKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cart, ok, err := h.facade.RestoreSaved(c.Request.Context(), req.ID, req.Customizations)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, cart)
}
