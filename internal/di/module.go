package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/procurement-console/internal/access"
	"github.com/polkiloo/procurement-console/internal/adapter/gateway"
	"github.com/polkiloo/procurement-console/internal/app"
	"github.com/polkiloo/procurement-console/internal/config"
	"github.com/polkiloo/procurement-console/internal/logger"
	"github.com/polkiloo/procurement-console/internal/refresh"
	"github.com/polkiloo/procurement-console/internal/server/http/router"
	"github.com/polkiloo/procurement-console/internal/usecase"
	"github.com/polkiloo/procurement-console/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		refresh.Module,
		access.Module,
		gateway.Module,
		usecase.Module,
		fx.Provide(func(bus *refresh.Bus) usecase.RefreshSignaller { return bus }),
		worker.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
