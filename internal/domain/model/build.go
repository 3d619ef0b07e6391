package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavedBuild is a custom configurator build kept for later reuse.
type SavedBuild struct {
	ID         string            `json:"id"`
	Name       string            `json:"name,omitempty"`
	Components map[string]string `json:"components"`
	Price      decimal.Decimal   `json:"price"`
	Date       time.Time         `json:"date"`
}
