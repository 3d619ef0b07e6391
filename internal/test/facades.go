package test

import (
	"context"

	"github.com/anvilforge/storefront/internal/domain/model"
)

// CartFacadeStub provides controllable behaviour for cart endpoints.
type CartFacadeStub struct {
	CartFn           func(context.Context) model.Cart
	AddItemFn        func(context.Context, model.CartItem) (model.Cart, error)
	RemoveItemFn     func(context.Context, string, model.Customizations) (model.Cart, error)
	UpdateQuantityFn func(context.Context, string, model.Customizations, int) (model.Cart, error)
	UpdateItemAtFn   func(context.Context, int, int, *int) (model.Cart, error)
	ClearCartFn      func(context.Context) error
	CartCountFn      func(context.Context) int
	SaveForLaterFn   func(context.Context, string, model.Customizations) (model.CartItem, bool, error)
	SavedItemsFn     func(context.Context) []model.CartItem
	RestoreSavedFn   func(context.Context, string, model.Customizations) (model.Cart, bool, error)
}

func (s CartFacadeStub) Cart(ctx context.Context) model.Cart {
	if s.CartFn != nil {
		return s.CartFn(ctx)
	}
	return model.EmptyCart()
}

func (s CartFacadeStub) AddItem(ctx context.Context, item model.CartItem) (model.Cart, error) {
	if s.AddItemFn != nil {
		return s.AddItemFn(ctx, item)
	}
	return model.Cart{Items: []model.CartItem{item}}, nil
}

func (s CartFacadeStub) RemoveItem(ctx context.Context, id string, customizations model.Customizations) (model.Cart, error) {
	if s.RemoveItemFn != nil {
		return s.RemoveItemFn(ctx, id, customizations)
	}
	return model.EmptyCart(), nil
}

func (s CartFacadeStub) UpdateQuantity(ctx context.Context, id string, customizations model.Customizations, quantity int) (model.Cart, error) {
	if s.UpdateQuantityFn != nil {
		return s.UpdateQuantityFn(ctx, id, customizations, quantity)
	}
	return model.EmptyCart(), nil
}

func (s CartFacadeStub) UpdateItemAt(ctx context.Context, index, delta int, explicit *int) (model.Cart, error) {
	if s.UpdateItemAtFn != nil {
		return s.UpdateItemAtFn(ctx, index, delta, explicit)
	}
	return model.EmptyCart(), nil
}

func (s CartFacadeStub) ClearCart(ctx context.Context) error {
	if s.ClearCartFn != nil {
		return s.ClearCartFn(ctx)
	}
	return nil
}

func (s CartFacadeStub) CartCount(ctx context.Context) int {
	if s.CartCountFn != nil {
		return s.CartCountFn(ctx)
	}
	return 0
}

func (s CartFacadeStub) SaveForLater(ctx context.Context, id string, customizations model.Customizations) (model.CartItem, bool, error) {
	if s.SaveForLaterFn != nil {
		return s.SaveForLaterFn(ctx, id, customizations)
	}
	return model.CartItem{ID: id, Customizations: customizations, Quantity: 1}, true, nil
}

func (s CartFacadeStub) SavedItems(ctx context.Context) []model.CartItem {
	if s.SavedItemsFn != nil {
		return s.SavedItemsFn(ctx)
	}
	return []model.CartItem{}
}

func (s CartFacadeStub) RestoreSaved(ctx context.Context, id string, customizations model.Customizations) (model.Cart, bool, error) {
	if s.RestoreSavedFn != nil {
		return s.RestoreSavedFn(ctx, id, customizations)
	}
	return model.EmptyCart(), true, nil
}

// CheckoutFacadeStub simulates order placement and lookup.
type CheckoutFacadeStub struct {
	CheckoutFn func(context.Context, model.ShippingInfo, model.PaymentDetails) (*model.Order, error)
	OrderFn    func(context.Context, string) (*model.Order, error)
}

func (s CheckoutFacadeStub) Checkout(ctx context.Context, shipping model.ShippingInfo, payment model.PaymentDetails) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, shipping, payment)
	}
	return &model.Order{ID: "ORD-TEST", Status: model.OrderStatusProcessing}, nil
}

func (s CheckoutFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusProcessing}, nil
}

// CatalogFacadeStub serves canned catalog snapshots.
type CatalogFacadeStub struct {
	ComponentsFn func(context.Context) (map[string][]model.Component, bool)
	SystemsFn    func(context.Context) ([]model.System, bool)
	SystemByIDFn func(context.Context, string) (*model.System, bool)
}

func (s CatalogFacadeStub) Components(ctx context.Context) (map[string][]model.Component, bool) {
	if s.ComponentsFn != nil {
		return s.ComponentsFn(ctx)
	}
	return map[string][]model.Component{}, true
}

func (s CatalogFacadeStub) Systems(ctx context.Context) ([]model.System, bool) {
	if s.SystemsFn != nil {
		return s.SystemsFn(ctx)
	}
	return []model.System{}, true
}

func (s CatalogFacadeStub) SystemByID(ctx context.Context, id string) (*model.System, bool) {
	if s.SystemByIDFn != nil {
		return s.SystemByIDFn(ctx, id)
	}
	return &model.System{ID: id}, true
}

// BuildFacadeStub stores nothing and echoes builds back.
type BuildFacadeStub struct {
	SaveBuildFn   func(context.Context, model.SavedBuild) (model.SavedBuild, error)
	SavedBuildsFn func(context.Context) []model.SavedBuild
}

func (s BuildFacadeStub) SaveBuild(ctx context.Context, build model.SavedBuild) (model.SavedBuild, error) {
	if s.SaveBuildFn != nil {
		return s.SaveBuildFn(ctx, build)
	}
	build.ID = "custom-build-test"
	return build, nil
}

func (s BuildFacadeStub) SavedBuilds(ctx context.Context) []model.SavedBuild {
	if s.SavedBuildsFn != nil {
		return s.SavedBuildsFn(ctx)
	}
	return []model.SavedBuild{}
}

// HealthFacadeStub reports configurable liveness.
type HealthFacadeStub struct {
	HealthFn func(context.Context) error
}

func (s HealthFacadeStub) Health(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}

// StorefrontFacadeStub aggregates all facade stubs for router level tests.
type StorefrontFacadeStub struct {
	CartFacadeStub
	CheckoutFacadeStub
	CatalogFacadeStub
	BuildFacadeStub
	HealthFacadeStub
}
