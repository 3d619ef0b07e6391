package di

import (
	"go.uber.org/fx"

	"github.com/anvilforge/storefront/internal/app"
	"github.com/anvilforge/storefront/internal/catalog"
	"github.com/anvilforge/storefront/internal/config"
	"github.com/anvilforge/storefront/internal/ledger"
	"github.com/anvilforge/storefront/internal/logger"
	"github.com/anvilforge/storefront/internal/server/http/handlers"
	"github.com/anvilforge/storefront/internal/server/http/router"
	"github.com/anvilforge/storefront/internal/storage/postgres"
)

// Module assembles the full application graph.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		catalog.Module,
		ledger.Module,
		fx.Provide(func(s *postgres.Storage) app.Pinger { return s }),
		fx.Provide(func(f *app.StorefrontFacade) handlers.StorefrontFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
