package dto

import "github.com/shopspring/decimal"

// SaveBuildRequest persists a configurator build for later.
type SaveBuildRequest struct {
	Name       string            `json:"name"`
	Components map[string]string `json:"components" binding:"required"`
	Price      decimal.Decimal   `json:"price"`
}
