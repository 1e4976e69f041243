package gateway

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/procurement-console/internal/config"
	"github.com/polkiloo/procurement-console/internal/domain/repository"
)

// Module exposes the gateway client behind the repository ports.
var Module = fx.Provide(
	newClient,
	func(g repository.Gateway) repository.OrderRepository { return g },
	func(g repository.Gateway) repository.SessionRepository { return g },
)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (repository.Gateway, error) {
	return NewHTTPClient(p.Config.GatewayURL, p.Logger,
		WithToken(p.Config.GatewayToken),
		WithTimeout(p.Config.GatewayTimeout),
	)
}
