package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/procurement-console/internal/app"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(func(console *app.Console, logger *slog.Logger) *gin.Engine {
	return Setup(console, logger)
})
