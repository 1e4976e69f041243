package refresh

import "go.uber.org/fx"

// Module provides the session-wide refresh bus.
var Module = fx.Provide(NewBus)
