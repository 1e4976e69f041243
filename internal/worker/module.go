package worker

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/procurement-console/internal/config"
	"github.com/polkiloo/procurement-console/internal/domain/repository"
	"github.com/polkiloo/procurement-console/internal/refresh"
)

// Module provides the purchase order list loader.
var Module = fx.Provide(newOrderListLoader)

type loaderParams struct {
	fx.In

	Config *config.Config
	Orders repository.OrderRepository
	Bus    *refresh.Bus
	Logger *slog.Logger
}

func newOrderListLoader(p loaderParams) *OrderListLoader {
	return NewOrderListLoader(p.Orders, p.Bus, p.Config.OrdersPollInterval, p.Logger)
}
