package di

import (
	"github.com/arkhipovds/leadbox/internal/app"
	"github.com/arkhipovds/leadbox/internal/config"
	"github.com/arkhipovds/leadbox/internal/logger"
	"github.com/arkhipovds/leadbox/internal/pkg/auth"
	"github.com/arkhipovds/leadbox/internal/server/http/handlers"
	"github.com/arkhipovds/leadbox/internal/server/http/router"
	"github.com/arkhipovds/leadbox/internal/storage/postgres"
	"github.com/arkhipovds/leadbox/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(facade *app.CRMFacade) handlers.CRMFacade { return facade }),
		fx.Provide(func(storage *postgres.Storage) handlers.HealthChecker { return storage }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
