package dto

import "github.com/shopspring/decimal"

// AddItemRequest describes a line candidate for the cart. Name and price are
// snapshots supplied by the caller at add time.
type AddItemRequest struct {
	ID             string            `json:"id" binding:"required"`
	Kind           string            `json:"type"`
	Name           string            `json:"name" binding:"required"`
	Specs          map[string]any    `json:"specs"`
	Price          decimal.Decimal   `json:"price"`
	Quantity       int               `json:"quantity"`
	Customizations map[string]string `json:"customizations"`
	Image          string            `json:"image"`
}

// LineKeyRequest identifies one cart line by its identity key.
type LineKeyRequest struct {
	ID             string            `json:"id" binding:"required"`
	Customizations map[string]string `json:"customizations"`
}

// UpdateQuantityRequest sets an absolute quantity for a line.
type UpdateQuantityRequest struct {
	ID             string            `json:"id" binding:"required"`
	Customizations map[string]string `json:"customizations"`
	Quantity       int               `json:"quantity"`
}

// AdjustLineRequest tweaks the line at a display position, either by a delta
// or to an explicit quantity.
type AdjustLineRequest struct {
	Delta    int  `json:"delta"`
	Quantity *int `json:"quantity,omitempty"`
}

// CartCountResponse feeds the navigation badge.
type CartCountResponse struct {
	Count int `json:"count"`
}
