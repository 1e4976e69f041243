package usecase

import "go.uber.org/fx"

// Module provides the order composer and reviewer to the fx container.
var Module = fx.Provide(
	NewOrderValidator,
	NewComposer,
	NewReviewer,
)
