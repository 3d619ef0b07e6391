package app

import (
	"context"
	"fmt"

	"github.com/anvilforge/storefront/internal/catalog"
	"github.com/anvilforge/storefront/internal/domain/model"
	"github.com/anvilforge/storefront/internal/ledger"
)

// Pinger reports durable-store connectivity for the health endpoint.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// StorefrontFacade aggregates the ledgers and the catalog behind one surface
// consumed by HTTP handlers and the catalog refresher.
type StorefrontFacade struct {
	cart    *ledger.CartLedger
	orders  *ledger.OrderLedger
	builds  *ledger.BuildLedger
	catalog catalog.Client
	cache   *catalog.Cache
	store   Pinger
}

// NewStorefrontFacade constructs the facade.
func NewStorefrontFacade(cart *ledger.CartLedger, orders *ledger.OrderLedger, builds *ledger.BuildLedger, client catalog.Client, cache *catalog.Cache, store Pinger) *StorefrontFacade {
	return &StorefrontFacade{
		cart:    cart,
		orders:  orders,
		builds:  builds,
		catalog: client,
		cache:   cache,
		store:   store,
	}
}

// --- cart operations ---

func (f *StorefrontFacade) Cart(ctx context.Context) model.Cart {
	return f.cart.Get(ctx)
}

func (f *StorefrontFacade) AddItem(ctx context.Context, item model.CartItem) (model.Cart, error) {
	return f.cart.Add(ctx, item)
}

func (f *StorefrontFacade) RemoveItem(ctx context.Context, id string, customizations model.Customizations) (model.Cart, error) {
	return f.cart.Remove(ctx, id, customizations)
}

func (f *StorefrontFacade) UpdateQuantity(ctx context.Context, id string, customizations model.Customizations, quantity int) (model.Cart, error) {
	return f.cart.UpdateQuantity(ctx, id, customizations, quantity)
}

func (f *StorefrontFacade) UpdateItemAt(ctx context.Context, index, delta int, explicit *int) (model.Cart, error) {
	return f.cart.UpdateAt(ctx, index, delta, explicit)
}

func (f *StorefrontFacade) ClearCart(ctx context.Context) error {
	return f.cart.Clear(ctx)
}

func (f *StorefrontFacade) CartCount(ctx context.Context) int {
	return f.cart.Count(ctx)
}

func (f *StorefrontFacade) SaveForLater(ctx context.Context, id string, customizations model.Customizations) (model.CartItem, bool, error) {
	return f.cart.SaveForLater(ctx, id, customizations)
}

func (f *StorefrontFacade) SavedItems(ctx context.Context) []model.CartItem {
	return f.cart.Saved(ctx)
}

// RestoreSaved finds the saved item by identity key and moves it back into
// the cart. ok=false when no saved item matches.
func (f *StorefrontFacade) RestoreSaved(ctx context.Context, id string, customizations model.Customizations) (model.Cart, bool, error) {
	for _, item := range f.cart.Saved(ctx) {
		if item.Matches(id, customizations) {
			cart, err := f.cart.RestoreFromSaved(ctx, item)
			return cart, err == nil, err
		}
	}
	return f.cart.Get(ctx), false, nil
}

// --- checkout and order status ---

func (f *StorefrontFacade) Checkout(ctx context.Context, shipping model.ShippingInfo, payment model.PaymentDetails) (*model.Order, error) {
	return f.orders.Place(ctx, f.cart.Get(ctx), shipping, payment)
}

func (f *StorefrontFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Lookup(ctx, id)
}

// --- saved builds ---

func (f *StorefrontFacade) SaveBuild(ctx context.Context, build model.SavedBuild) (model.SavedBuild, error) {
	return f.builds.Save(ctx, build)
}

func (f *StorefrontFacade) SavedBuilds(ctx context.Context) []model.SavedBuild {
	return f.builds.List(ctx)
}

// --- catalog ---

// RefreshCatalog refetches the catalog store and swaps the cached snapshot.
func (f *StorefrontFacade) RefreshCatalog(ctx context.Context) error {
	snapshot, err := f.catalog.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch catalog: %w", err)
	}
	f.cache.Set(snapshot)
	return nil
}

// Components returns the cached components grouped by category. ok=false
// before the first successful refresh.
func (f *StorefrontFacade) Components(ctx context.Context) (map[string][]model.Component, bool) {
	snapshot, ok := f.cache.Snapshot()
	if !ok {
		return nil, false
	}
	return snapshot.Components, true
}

func (f *StorefrontFacade) Systems(ctx context.Context) ([]model.System, bool) {
	snapshot, ok := f.cache.Snapshot()
	if !ok {
		return nil, false
	}
	return snapshot.Systems, true
}

func (f *StorefrontFacade) SystemByID(ctx context.Context, id string) (*model.System, bool) {
	snapshot, ok := f.cache.Snapshot()
	if !ok {
		return nil, false
	}
	for _, sys := range snapshot.Systems {
		if sys.ID == id {
			return &sys, true
		}
	}
	return nil, false
}

// --- health ---

func (f *StorefrontFacade) Health(ctx context.Context) error {
	return f.store.HealthCheck(ctx)
}
