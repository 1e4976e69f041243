package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/procurement-console/internal/domain/model"
	"github.com/polkiloo/procurement-console/internal/refresh"
	"github.com/polkiloo/procurement-console/internal/server/http/dto"
	"github.com/polkiloo/procurement-console/internal/server/http/middleware"
)

// RefreshHandler exposes the refresh bus.
type RefreshHandler struct {
	facade RefreshFacade
}

// NewRefreshHandler constructs RefreshHandler.
func NewRefreshHandler(facade RefreshFacade) *RefreshHandler {
	return &RefreshHandler{facade: facade}
}

// State handles GET /api/refresh.
func (h *RefreshHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, toRefreshResponse(h.facade.RefreshState(), nil))
}

// Trigger handles POST /api/refresh. Unknown domain names are ignored.
func (h *RefreshHandler) Trigger(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BadRequest(c, "invalid refresh request")
		return
	}

	var triggered []model.Domain
	if req.All {
		h.facade.TriggerAll()
		triggered = model.AllDomains()
	} else {
		triggered = h.facade.Trigger(req.Domains)
	}
	c.JSON(http.StatusOK, toRefreshResponse(h.facade.RefreshState(), triggered))
}

// Signal handles POST /api/refresh/changes/:change.
func (h *RefreshHandler) Signal(c *gin.Context) {
	if err := h.facade.Signal(c.Param("change")); err != nil {
		middleware.Fail(c, err, "unknown change")
		return
	}
	c.JSON(http.StatusOK, toRefreshResponse(h.facade.RefreshState(), nil))
}

func toRefreshResponse(snap refresh.Snapshot, triggered []model.Domain) dto.RefreshResponse {
	resp := dto.RefreshResponse{Stamps: make(map[string]uint64, len(snap))}
	for d, s := range snap {
		resp.Stamps[string(d)] = uint64(s)
	}
	for _, d := range triggered {
		resp.Triggered = append(resp.Triggered, string(d))
	}
	return resp
}
