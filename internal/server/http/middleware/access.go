package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/procurement-console/internal/access"
)

// Authorizer checks what the signed-in operator may do.
type Authorizer interface {
	Authorize(ctx context.Context, capability access.Capability) error
	AuthorizeRoute(ctx context.Context, route string) error
}

// RequireCapability lets the request through only when the operator holds capability.
func RequireCapability(a Authorizer, capability access.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.Authorize(c.Request.Context(), capability); err != nil {
			Fail(c, err, "Failed to load session")
			return
		}
		c.Next()
	}
}

// RequireRoute lets the request through only when route is in the operator's menu.
func RequireRoute(a Authorizer, route string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.AuthorizeRoute(c.Request.Context(), route); err != nil {
			Fail(c, err, "Failed to load session")
			return
		}
		c.Next()
	}
}
