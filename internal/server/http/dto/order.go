package dto

import "github.com/anvilforge/storefront/internal/domain/model"

// ShippingForm carries the checkout shipping fields.
type ShippingForm struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Zip     string `json:"zip" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
}

// PaymentForm carries the checkout payment fields. The card number never
// leaves the checkout path.
type PaymentForm struct {
	CardName   string `json:"cardName" binding:"required"`
	CardNumber string `json:"cardNumber" binding:"required"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// CheckoutRequest is the full checkout payload.
type CheckoutRequest struct {
	Shipping ShippingForm `json:"shipping" binding:"required"`
	Payment  PaymentForm  `json:"payment" binding:"required"`
}

// OrderResponse is the public order record plus progress metadata for the
// status timeline.
type OrderResponse struct {
	Order      model.Order `json:"order"`
	StatusStep int         `json:"statusStep"`
	Steps      []string    `json:"steps"`
}
