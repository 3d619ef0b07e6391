package model

import (
	"maps"

	"github.com/shopspring/decimal"
)

// ItemKind distinguishes individual components from prebuilt or custom systems.
type ItemKind string

const (
	ItemKindComponent ItemKind = "component"
	ItemKindSystem    ItemKind = "system"
)

// Customizations maps a configuration category to the selected option id.
// It participates in cart line identity: two lines with the same catalog id
// but different customizations are distinct.
type Customizations map[string]string

// CartItem is a single purchasable line. Name, specs and price are snapshots
// taken at add time; the catalog is never consulted again for a stored line.
// Specs are untyped so a line can carry either flat component specs or a
// prebuilt system's category-to-part mapping.
type CartItem struct {
	ID             string          `json:"id"`
	Kind           ItemKind        `json:"type"`
	Name           string          `json:"name"`
	Specs          map[string]any  `json:"specs,omitempty"`
	UnitPrice      decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	Customizations Customizations  `json:"customizations,omitempty"`
	Image          string          `json:"image,omitempty"`
}

// Matches reports whether the line carries the given identity key. Nil and
// empty customizations compare equal.
func (i CartItem) Matches(id string, customizations Customizations) bool {
	return i.ID == id && maps.Equal(i.Customizations, customizations)
}

// Clone returns a deep copy of the line.
func (i CartItem) Clone() CartItem {
	i.Specs = maps.Clone(i.Specs)
	i.Customizations = maps.Clone(i.Customizations)
	return i
}

// Totals holds the derived money fields of a cart or an order snapshot.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// Cart is the mutable shopping cart. Items keep insertion order; the embedded
// totals are recomputed by the ledger after every mutation.
type Cart struct {
	Items []CartItem `json:"items"`
	Totals
}

// EmptyCart returns the default cart shape used when nothing is persisted or
// the persisted value is unreadable.
func EmptyCart() Cart {
	return Cart{Items: []CartItem{}}
}

// Count is the total quantity across all lines.
func (c Cart) Count() int {
	var total int
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// CloneItems returns a deep copy of the cart lines, suitable for an order
// snapshot that must not alias live cart state.
func (c Cart) CloneItems() []CartItem {
	items := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, item.Clone())
	}
	return items
}
