package model

import "github.com/shopspring/decimal"

// Component is a catalog part entry, grouped by category in the catalog store.
// Spec values are heterogeneous in the source documents (core counts are
// numbers, capacities are strings), so they stay untyped.
type Component struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Brand          string          `json:"brand"`
	Specs          map[string]any  `json:"specs,omitempty"`
	AnvilCertified bool            `json:"anvilCertified"`
	Image          string          `json:"image,omitempty"`
}

// Upgrade is an optional swap offered for one category of a prebuilt system.
type Upgrade struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	UpgradeCost decimal.Decimal `json:"upgradeCost"`
}

// SystemSpec is one fitted part of a prebuilt system, keyed by category in
// System.Specs.
type SystemSpec struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// System is a prebuilt catalog entry.
type System struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	BasePrice       decimal.Decimal       `json:"basePrice"`
	Description     string                `json:"description"`
	Specs           map[string]SystemSpec `json:"specs,omitempty"`
	Upgrades        map[string][]Upgrade  `json:"upgrades,omitempty"`
	PerformanceTier string               `json:"performanceTier,omitempty"`
	UseCase         string               `json:"useCase,omitempty"`
	Popularity      int                  `json:"popularity,omitempty"`
	Tag             string               `json:"tag,omitempty"`
	Image           string               `json:"image,omitempty"`
}

// Catalog is a point-in-time snapshot of the external catalog store.
type Catalog struct {
	Components map[string][]Component `json:"components"`
	Systems    []System               `json:"systems"`
}
