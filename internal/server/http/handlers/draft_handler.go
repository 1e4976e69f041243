package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/procurement-console/internal/domain/model"
	"github.com/polkiloo/procurement-console/internal/server/http/dto"
	"github.com/polkiloo/procurement-console/internal/server/http/middleware"
)

const (
	createFailed  = "Failed to create PO"
	createSuccess = "Purchase order created successfully"
)

// DraftHandler serves the order composer.
type DraftHandler struct {
	facade DraftFacade
}

// NewDraftHandler constructs DraftHandler.
func NewDraftHandler(facade DraftFacade) *DraftHandler {
	return &DraftHandler{facade: facade}
}

// Get handles GET /api/purchase-orders/draft.
func (h *DraftHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, toDraftResponse(h.facade.Draft()))
}

// SetHeader handles PUT /api/purchase-orders/draft/header.
func (h *DraftHandler) SetHeader(c *gin.Context) {
	var req dto.DraftHeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BadRequest(c, "po_date and purchase_office are required")
		return
	}
	date, err := time.Parse(time.DateOnly, req.PODate)
	if err != nil {
		middleware.BadRequest(c, "po_date must be YYYY-MM-DD")
		return
	}
	view := h.facade.SetDraftHeader(date, model.Office(req.PurchaseOffice))
	c.JSON(http.StatusOK, toDraftResponse(view))
}

// AddLine handles POST /api/purchase-orders/draft/lines.
func (h *DraftHandler) AddLine(c *gin.Context) {
	c.JSON(http.StatusCreated, toDraftResponse(h.facade.AddDraftLine()))
}

// UpdateLine handles PATCH /api/purchase-orders/draft/lines/:index.
func (h *DraftHandler) UpdateLine(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		middleware.BadRequest(c, "line index must be a number")
		return
	}
	var req dto.LineUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BadRequest(c, "field is required")
		return
	}
	view, err := h.facade.UpdateDraftLine(index, model.LineField(req.Field), req.Value)
	if err != nil {
		middleware.Fail(c, err, createFailed)
		return
	}
	c.JSON(http.StatusOK, toDraftResponse(view))
}

// RemoveLine handles DELETE /api/purchase-orders/draft/lines/:index.
func (h *DraftHandler) RemoveLine(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		middleware.BadRequest(c, "line index must be a number")
		return
	}
	view, err := h.facade.RemoveDraftLine(index)
	if err != nil {
		middleware.Fail(c, err, createFailed)
		return
	}
	c.JSON(http.StatusOK, toDraftResponse(view))
}

// Submit handles POST /api/purchase-orders/draft/submit.
func (h *DraftHandler) Submit(c *gin.Context) {
	order, err := h.facade.SubmitDraft(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err, createFailed)
		return
	}
	resp := dto.OrderMessageResponse{Message: createSuccess}
	if order != nil {
		created := toOrderResponse(*order)
		resp.Order = &created
	}
	c.JSON(http.StatusCreated, resp)
}
