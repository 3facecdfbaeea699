package di

import (
	"go.uber.org/fx"

	"github.com/spinzone/backend/internal/adapter/gateway"
	"github.com/spinzone/backend/internal/app"
	"github.com/spinzone/backend/internal/config"
	"github.com/spinzone/backend/internal/logger"
	"github.com/spinzone/backend/internal/pkg/auth"
	"github.com/spinzone/backend/internal/server/http/handlers"
	"github.com/spinzone/backend/internal/server/http/router"
	"github.com/spinzone/backend/internal/storage/postgres"
	"github.com/spinzone/backend/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		gateway.Module,
		usecase.Module,
		fx.Provide(func(f *app.CommerceFacade) handlers.CommerceFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
