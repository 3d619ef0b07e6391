package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/anvilforge/storefront/internal/domain/errors"
	"github.com/anvilforge/storefront/internal/domain/model"
	"github.com/anvilforge/storefront/internal/server/http/dto"
)

// OrderHandler manages checkout and order-status endpoints.
type OrderHandler struct {
	facade CheckoutFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade CheckoutFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Checkout handles POST /api/checkout.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	shipping := model.ShippingInfo{
		Name:    req.Shipping.Name,
		Address: req.Shipping.Address,
		City:    req.Shipping.City,
		State:   req.Shipping.State,
		Zip:     req.Shipping.Zip,
		Email:   req.Shipping.Email,
		Phone:   req.Shipping.Phone,
	}
	payment := model.PaymentDetails{
		CardName:   req.Payment.CardName,
		CardNumber: req.Payment.CardNumber,
		Expiry:     req.Payment.Expiry,
		CVV:        req.Payment.CVV,
	}

	order, err := h.facade.Checkout(c.Request.Context(), shipping, payment)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyCart), errors.Is(err, domainErrors.ErrInvalidPayment):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// Status handles GET /api/orders/:id.
func (h *OrderHandler) Status(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}
