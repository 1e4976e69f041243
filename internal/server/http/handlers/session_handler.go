package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/procurement-console/internal/server/http/dto"
	"github.com/polkiloo/procurement-console/internal/server/http/middleware"
)

const sessionFailed = "Failed to load session"

// SessionHandler serves the operator and menu endpoints.
type SessionHandler struct {
	facade SessionFacade
}

// NewSessionHandler constructs SessionHandler.
func NewSessionHandler(facade SessionFacade) *SessionHandler {
	return &SessionHandler{facade: facade}
}

// Session handles GET /api/session.
func (h *SessionHandler) Session(c *gin.Context) {
	session, err := h.facade.Session(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err, sessionFailed)
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{
		User: dto.UserResponse{
			Name:         session.User.Name,
			Email:        session.User.Email,
			Role:         string(session.User.Role),
			Organization: session.User.Organization,
		},
		Initial:      session.Initial,
		Capabilities: session.Capabilities,
	})
}

// Menu handles GET /api/menu.
func (h *SessionHandler) Menu(c *gin.Context) {
	entries, err := h.facade.Menu(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err, sessionFailed)
		return
	}
	resp := make([]dto.MenuEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.MenuEntryResponse{Route: e.Route, Label: e.Label, Icon: e.Icon, TestID: e.TestID()})
	}
	c.JSON(http.StatusOK, resp)
}
