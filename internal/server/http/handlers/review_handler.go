package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/procurement-console/internal/domain/model"
	"github.com/polkiloo/procurement-console/internal/server/http/dto"
	"github.com/polkiloo/procurement-console/internal/server/http/middleware"
)

// ReviewHandler serves the approval dialog.
type ReviewHandler struct {
	facade ReviewFacade
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(facade ReviewFacade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// Get handles GET /api/purchase-orders/review.
func (h *ReviewHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, toReviewResponse(h.facade.Review()))
}

// Open handles POST /api/purchase-orders/review/:po.
func (h *ReviewHandler) Open(c *gin.Context) {
	state, err := h.facade.OpenReview(c.Request.Context(), c.Param("po"))
	if err != nil {
		middleware.Fail(c, err, ordersFailed)
		return
	}
	c.JSON(http.StatusOK, toReviewResponse(state))
}

// SetReason handles PUT /api/purchase-orders/review/reason.
func (h *ReviewHandler) SetReason(c *gin.Context) {
	var req dto.ReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BadRequest(c, "invalid rejection reason")
		return
	}
	state, err := h.facade.SetReviewReason(req.RejectionReason)
	if err != nil {
		middleware.Fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, toReviewResponse(state))
}

// Decide handles POST /api/purchase-orders/review/decision.
func (h *ReviewHandler) Decide(c *gin.Context) {
	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BadRequest(c, "action must be approve or reject")
		return
	}
	kind, _ := model.ParseApprovalKind(req.Action)

	order, err := h.facade.Decide(c.Request.Context(), kind)
	if err != nil {
		middleware.Fail(c, err, fmt.Sprintf("Failed to %s PO", kind))
		return
	}
	resp := dto.OrderMessageResponse{Message: fmt.Sprintf("PO %sd successfully", kind)}
	if order != nil {
		decided := toOrderResponse(*order)
		resp.Order = &decided
	}
	c.JSON(http.StatusOK, resp)
}

// Close handles DELETE /api/purchase-orders/review.
func (h *ReviewHandler) Close(c *gin.Context) {
	h.facade.CloseReview()
	c.JSON(http.StatusOK, toReviewResponse(h.facade.Review()))
}
