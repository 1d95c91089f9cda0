package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/lodgebook/lodgebook/internal/authz"
)

// contextKey is a private type for context keys to prevent collisions.
type contextKey string

const (
	principalKey = contextKey("principal")
	loggerCtxKey = contextKey("logger")
)

// Principal is the authenticated actor attached to a request. It is created
// by the auth middleware from token claims and never persisted.
type Principal struct {
	UserID string
	Role   authz.Role
}

// GetPrincipalFromContext retrieves the authenticated principal from the
// request context. The second return value reports whether one was attached.
func GetPrincipalFromContext(c *gin.Context) (Principal, bool) {
	val := c.Request.Context().Value(principalKey)
	if val == nil {
		return Principal{}, false
	}
	principal, ok := val.(Principal)
	return principal, ok
}
