package catalog

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/anvilforge/storefront/internal/config"
)

// Module wires the catalog client and cache for dependency injection.
var Module = fx.Provide(
	NewCache,
	func(cfg *config.Config, logger *slog.Logger) (Client, error) {
		return NewHTTPClient(cfg.CatalogAddress, logger)
	},
)
