package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/procurement-console/internal/access"
	"github.com/polkiloo/procurement-console/internal/app"
	"github.com/polkiloo/procurement-console/internal/server/http/handlers"
	"github.com/polkiloo/procurement-console/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ConsoleFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	sessionHandler := handlers.NewSessionHandler(facade)
	refreshHandler := handlers.NewRefreshHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	draftHandler := handlers.NewDraftHandler(facade)
	reviewHandler := handlers.NewReviewHandler(facade)

	api := engine.Group("/api")
	api.GET("/session", sessionHandler.Session)
	api.GET("/menu", sessionHandler.Menu)

	refresh := api.Group("/refresh")
	refresh.GET("", refreshHandler.State)
	refresh.POST("", refreshHandler.Trigger)
	refresh.POST("/changes/:change", refreshHandler.Signal)

	orders := api.Group(app.PurchaseOrdersRoute)
	orders.GET("", middleware.RequireRoute(facade, app.PurchaseOrdersRoute), orderHandler.List)

	draft := orders.Group("/draft")
	draft.Use(middleware.RequireCapability(facade, access.CapabilityCreateOrders))
	draft.GET("", draftHandler.Get)
	draft.PUT("/header", draftHandler.SetHeader)
	draft.POST("/lines", draftHandler.AddLine)
	draft.PATCH("/lines/:index", draftHandler.UpdateLine)
	draft.DELETE("/lines/:index", draftHandler.RemoveLine)
	draft.POST("/submit", draftHandler.Submit)

	review := orders.Group("/review")
	review.Use(middleware.RequireCapability(facade, access.CapabilityReviewOrders))
	review.GET("", reviewHandler.Get)
	review.DELETE("", reviewHandler.Close)
	review.PUT("/reason", reviewHandler.SetReason)
	review.POST("/decision", reviewHandler.Decide)
	review.POST("/:po", reviewHandler.Open)

	return engine
}
