package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/oklog/ulid/v2"

	domainErrors "github.com/anvilforge/storefront/internal/domain/errors"
	"github.com/anvilforge/storefront/internal/domain/model"
	"github.com/anvilforge/storefront/internal/storage/kv"
)

// CartClearer is the slice of cart behaviour the order ledger needs after a
// successful placement.
type CartClearer interface {
	Clear(ctx context.Context) error
}

// OrderLedger creates immutable order records from cart snapshots and looks
// them up by id. It never advances status; orders stay at the stage they were
// created with.
type OrderLedger struct {
	store  kv.Store
	cart   CartClearer
	logger *slog.Logger
	now    func() time.Time
	mu     sync.Mutex
}

// NewOrderLedger constructs an order ledger over the given store.
func NewOrderLedger(store kv.Store, cart CartClearer, logger *slog.Logger) *OrderLedger {
	return &OrderLedger{store: store, cart: cart, logger: logger, now: time.Now}
}

// Place validates the checkout, persists an immutable order snapshot and
// clears the cart. The full card number is discarded immediately; only the
// last four digits are kept. Validation failures create no order record.
func (l *OrderLedger) Place(ctx context.Context, cart model.Cart, shipping model.ShippingInfo, payment model.PaymentDetails) (*model.Order, error) {
	if len(cart.Items) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}
	last4, err := cardLast4(payment.CardNumber)
	if err != nil {
		return nil, err
	}

	now := l.now().UTC()
	order := model.Order{
		ID:       newOrderID(now),
		Items:    cart.CloneItems(),
		Shipping: shipping,
		Payment:  model.PaymentRecord{Method: "card", Last4: last4},
		Totals:   cart.Totals,
		Date:     now,
		Status:   model.OrderStatusProcessing,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	orders := kv.ReadJSON(ctx, l.store, ordersKey, []model.Order{})
	orders = append(orders, order)
	if err := kv.WriteJSON(ctx, l.store, ordersKey, orders); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}
	// The order record is the source of truth once written. A failed cart
	// clear must not fail the placement: surfacing an error here would make
	// the caller retry and duplicate the order.
	if err := l.cart.Clear(ctx); err != nil {
		l.logger.Warn("cart not cleared after order",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}
	return &order, nil
}

// Lookup scans persisted orders for id. Absence is a normal outcome reported
// as ErrNotFound, not a fault.
func (l *OrderLedger) Lookup(ctx context.Context, id string) (*model.Order, error) {
	orders := kv.ReadJSON(ctx, l.store, ordersKey, []model.Order{})
	for _, order := range orders {
		if order.ID == id {
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Order ids embed a ULID: unique and lexicographically sortable by creation
// time.
func newOrderID(now time.Time) string {
	return "ORD-" + ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String()
}

// cardLast4 strips whitespace, requires 13 to 19 digits and returns the last
// four. Anything else is an invalid payment.
func cardLast4(number string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, number)
	if len(digits) < 13 || len(digits) > 19 {
		return "", domainErrors.ErrInvalidPayment
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", domainErrors.ErrInvalidPayment
		}
	}
	return digits[len(digits)-4:], nil
}
