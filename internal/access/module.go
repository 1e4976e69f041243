package access

import (
	"go.uber.org/fx"

	"github.com/polkiloo/procurement-console/internal/config"
)

// Module provides the navigation table and capability policy.
var Module = fx.Provide(
	LoadMenu,
	func(cfg *config.Config) *Policy {
		return NewPolicy(cfg.CreatorOrganization)
	},
)
