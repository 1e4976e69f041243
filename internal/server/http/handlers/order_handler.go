package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/procurement-console/internal/domain/errors"
	"github.com/polkiloo/procurement-console/internal/server/http/dto"
	"github.com/polkiloo/procurement-console/internal/server/http/middleware"
)

const ordersFailed = "Failed to fetch purchase orders"

// OrderHandler serves the purchase order list.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/purchase-orders. A failed background refresh keeps
// the previous list and reports the notice alongside it.
func (h *OrderHandler) List(c *gin.Context) {
	view, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err, ordersFailed)
		return
	}

	resp := dto.OrdersResponse{
		Orders:   make([]dto.OrderResponse, 0, len(view.Orders)),
		Stamp:    uint64(view.Stamp),
		LoadedAt: view.LoadedAt,
	}
	for _, o := range view.Orders {
		resp.Orders = append(resp.Orders, toOrderResponse(o))
	}
	if view.Err != nil {
		resp.Error = domainErrors.UserMessage(view.Err, ordersFailed)
	}
	c.JSON(http.StatusOK, resp)
}
