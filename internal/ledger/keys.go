package ledger

// Persisted collection keys. The layout is single-tenant: one cart, one
// saved-items list, one orders list per deployment.
const (
	cartKey        = "cart"
	savedItemsKey  = "savedItems"
	ordersKey      = "orders"
	savedBuildsKey = "savedBuilds"
)
