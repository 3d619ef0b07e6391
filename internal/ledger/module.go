package ledger

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/anvilforge/storefront/internal/storage/kv"
)

// Module provides the cart, order and build ledgers to the fx container.
var Module = fx.Provide(
	NewCartLedger,
	func(store kv.Store, cart *CartLedger, logger *slog.Logger) *OrderLedger {
		return NewOrderLedger(store, cart, logger)
	},
	NewBuildLedger,
)
