package handlers

import (
	"context"

	"github.com/anvilforge/storefront/internal/domain/model"
)

// CartFacade exposes cart ledger operations to HTTP handlers.
type CartFacade interface {
	Cart(ctx context.Context) model.Cart
	AddItem(ctx context.Context, item model.CartItem) (model.Cart, error)
	RemoveItem(ctx context.Context, id string, customizations model.Customizations) (model.Cart, error)
	UpdateQuantity(ctx context.Context, id string, customizations model.Customizations, quantity int) (model.Cart, error)
	UpdateItemAt(ctx context.Context, index, delta int, explicit *int) (model.Cart, error)
	ClearCart(ctx context.Context) error
	CartCount(ctx context.Context) int
	SaveForLater(ctx context.Context, id string, customizations model.Customizations) (model.CartItem, bool, error)
	SavedItems(ctx context.Context) []model.CartItem
	RestoreSaved(ctx context.Context, id string, customizations model.Customizations) (model.Cart, bool, error)
}

// CheckoutFacade provides order placement and status lookup.
type CheckoutFacade interface {
	Checkout(ctx context.Context, shipping model.ShippingInfo, payment model.PaymentDetails) (*model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
}

// CatalogFacade serves cached catalog snapshots.
type CatalogFacade interface {
	Components(ctx context.Context) (map[string][]model.Component, bool)
	Systems(ctx context.Context) ([]model.System, bool)
	SystemByID(ctx context.Context, id string) (*model.System, bool)
}

// BuildFacade stores and lists saved configurator builds.
type BuildFacade interface {
	SaveBuild(ctx context.Context, build model.SavedBuild) (model.SavedBuild, error)
	SavedBuilds(ctx context.Context) []model.SavedBuild
}

// HealthFacade reports durable-store connectivity.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	CartFacade
	CheckoutFacade
	CatalogFacade
	BuildFacade
	HealthFacade
}
