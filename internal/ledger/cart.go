package ledger

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	domainErrors "github.com/anvilforge/storefront/internal/domain/errors"
	"github.com/anvilforge/storefront/internal/domain/model"
	"github.com/anvilforge/storefront/internal/storage/kv"
)

// Pricing rules applied on every totals recompute.
var (
	taxRate           = decimal.NewFromFloat(0.08)
	shippingThreshold = decimal.NewFromInt(2000)
	shippingCost      = decimal.NewFromInt(50)
)

const (
	minQuantity = 1
	maxQuantity = 10
)

// CartLedger owns the persisted cart and the saved-for-later collection.
// Every mutation recomputes totals before persisting, so a subsequent read
// never observes stale money fields. The ledger has no view dependencies;
// callers re-read state to render.
type CartLedger struct {
	store kv.Store
	mu    sync.Mutex
}

// NewCartLedger constructs a cart ledger over the given durable store.
func NewCartLedger(store kv.Store) *CartLedger {
	return &CartLedger{store: store}
}

// Get returns the persisted cart, or the default empty cart when nothing is
// stored or the stored value is corrupt.
func (l *CartLedger) Get(ctx context.Context) model.Cart {
	return kv.ReadJSON(ctx, l.store, cartKey, model.EmptyCart())
}

// Add merges the candidate into an existing line carrying the same identity
// key, summing quantities, or appends a new line. Quantities clamp to
// [1,10] on every mutation path, merge included. The unit price is a
// caller-supplied snapshot and must be non-negative; a negative price is
// rejected before anything is persisted.
func (l *CartLedger) Add(ctx context.Context, candidate model.CartItem) (model.Cart, error) {
	if candidate.UnitPrice.IsNegative() {
		return l.Get(ctx), domainErrors.ErrInvalidItem
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cart := l.Get(ctx)
	mergeLine(&cart, candidate)
	return l.persist(ctx, cart)
}

// Remove drops every line matching the identity key. A missing line is a
// no-op, not an error.
func (l *CartLedger) Remove(ctx context.Context, id string, customizations model.Customizations) (model.Cart, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cart := l.Get(ctx)
	cart.Items = slices.DeleteFunc(cart.Items, func(item model.CartItem) bool {
		return item.Matches(id, customizations)
	})
	return l.persist(ctx, cart)
}

// UpdateQuantity sets the quantity of the matching line, clamped to [1,10].
// Zero or negative quantity removes the line. A missing line is a no-op.
func (l *CartLedger) UpdateQuantity(ctx context.Context, id string, customizations model.Customizations, quantity int) (model.Cart, error) {
	if quantity <= 0 {
		return l.Remove(ctx, id, customizations)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cart := l.Get(ctx)
	idx := findLine(cart.Items, id, customizations)
	if idx < 0 {
		return cart, nil
	}
	cart.Items[idx].Quantity = clampQuantity(quantity)
	return l.persist(ctx, cart)
}

// UpdateAt adjusts the line at a display position by delta, or sets it to
// *explicit when provided. The same clamping rule applies; dropping to zero
// or below removes the line. An out-of-range index is a no-op.
func (l *CartLedger) UpdateAt(ctx context.Context, index, delta int, explicit *int) (model.Cart, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cart := l.Get(ctx)
	if index < 0 || index >= len(cart.Items) {
		return cart, nil
	}

	quantity := cart.Items[index].Quantity + delta
	if explicit != nil {
		quantity = *explicit
	}
	if quantity <= 0 {
		cart.Items = slices.Delete(cart.Items, index, index+1)
	} else {
		cart.Items[index].Quantity = clampQuantity(quantity)
	}
	return l.persist(ctx, cart)
}

// Clear deletes the persisted cart record entirely rather than writing an
// empty document. The next Get returns a fresh default cart.
func (l *CartLedger) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Remove(ctx, cartKey)
}

// Count is the total quantity across lines, zero for an absent cart.
func (l *CartLedger) Count(ctx context.Context) int {
	return l.Get(ctx).Count()
}

// Saved returns the saved-for-later collection.
func (l *CartLedger) Saved(ctx context.Context) []model.CartItem {
	return kv.ReadJSON(ctx, l.store, savedItemsKey, []model.CartItem{})
}

// SaveForLater moves the matching line out of the cart and appends it to the
// saved-items collection with all fields intact. Returns the moved line, or
// ok=false when no line matched, in which case neither collection changes.
func (l *CartLedger) SaveForLater(ctx context.Context, id string, customizations model.Customizations) (model.CartItem, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cart := l.Get(ctx)
	idx := findLine(cart.Items, id, customizations)
	if idx < 0 {
		return model.CartItem{}, false, nil
	}

	moved := cart.Items[idx]
	cart.Items = slices.Delete(cart.Items, idx, idx+1)
	if _, err := l.persist(ctx, cart); err != nil {
		return model.CartItem{}, false, err
	}

	saved := l.Saved(ctx)
	saved = append(saved, moved)
	if err := kv.WriteJSON(ctx, l.store, savedItemsKey, saved); err != nil {
		return model.CartItem{}, false, fmt.Errorf("persist saved items: %w", err)
	}
	return moved, true, nil
}

// RestoreFromSaved merges the saved item back into the live cart with the
// usual merge rule, then drops it from the saved-items collection. Merging
// into an existing line still counts as a successful move.
func (l *CartLedger) RestoreFromSaved(ctx context.Context, saved model.CartItem) (model.Cart, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cart := l.Get(ctx)
	mergeLine(&cart, saved)
	cart, err := l.persist(ctx, cart)
	if err != nil {
		return cart, err
	}

	remaining := slices.DeleteFunc(l.Saved(ctx), func(item model.CartItem) bool {
		return item.Matches(saved.ID, saved.Customizations)
	})
	if err := kv.WriteJSON(ctx, l.store, savedItemsKey, remaining); err != nil {
		return cart, fmt.Errorf("persist saved items: %w", err)
	}
	return cart, nil
}

func (l *CartLedger) persist(ctx context.Context, cart model.Cart) (model.Cart, error) {
	cart.Totals = computeTotals(cart.Items)
	if err := kv.WriteJSON(ctx, l.store, cartKey, cart); err != nil {
		return cart, fmt.Errorf("persist cart: %w", err)
	}
	return cart, nil
}

func mergeLine(cart *model.Cart, candidate model.CartItem) {
	candidate = candidate.Clone()
	candidate.Quantity = clampQuantity(candidate.Quantity)
	if idx := findLine(cart.Items, candidate.ID, candidate.Customizations); idx >= 0 {
		cart.Items[idx].Quantity = clampQuantity(cart.Items[idx].Quantity + candidate.Quantity)
		return
	}
	cart.Items = append(cart.Items, candidate)
}

// computeTotals derives the money fields from the lines. Subtotal is exact;
// tax is rounded half-up to cents once per recompute. An empty cart carries
// all-zero totals, free shipping included.
func computeTotals(items []model.CartItem) model.Totals {
	if len(items) == 0 {
		return model.Totals{}
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	tax := subtotal.Mul(taxRate).Round(2)
	shipping := shippingCost
	if subtotal.GreaterThanOrEqual(shippingThreshold) {
		shipping = decimal.Zero
	}
	return model.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping),
	}
}

func clampQuantity(quantity int) int {
	if quantity < minQuantity {
		return minQuantity
	}
	if quantity > maxQuantity {
		return maxQuantity
	}
	return quantity
}

func findLine(items []model.CartItem, id string, customizations model.Customizations) int {
	return slices.IndexFunc(items, func(item model.CartItem) bool {
		return item.Matches(id, customizations)
	})
}
