package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lodgebook/lodgebook/internal/authz"
)

// abortUnauthenticated terminates the request with 401. No principal means
// the request never reaches an authorization decision.
func abortUnauthenticated(c *gin.Context) {
	GetLoggerFromCtx(c.Request.Context()).Warn("No authenticated principal on request")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
}

// abortForbidden terminates the request with 403 and a structured denial
// payload carrying the required permission and the caller's role, for audit.
func abortForbidden(c *gin.Context, required authz.Permission, role authz.Role) {
	GetLoggerFromCtx(c.Request.Context()).Warn("Permission denied",
		slog.String("required", string(required)),
		slog.String("role", string(role)),
	)
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"error":    "Permission denied",
		"required": string(required),
		"userRole": string(role),
	})
}

// RequirePermission gates a route on the principal holding the exact
// permission. Denials are deterministic given (role, permission) and are
// never retried.
func RequirePermission(permission authz.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipalFromContext(c)
		if !ok {
			abortUnauthenticated(c)
			return
		}
		if !authz.HasPermission(principal.Role, permission) {
			abortForbidden(c, permission, principal.Role)
			return
		}
		c.Next()
	}
}

// RequireResource gates a route on "<resource>:<action>" access.
func RequireResource(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipalFromContext(c)
		if !ok {
			abortUnauthenticated(c)
			return
		}
		if !authz.CanAccessResource(principal.Role, resource, action) {
			abortForbidden(c, authz.Permission(resource+":"+action), principal.Role)
			return
		}
		c.Next()
	}
}

// RequireAdmin proceeds only for admin or super_admin principals.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipalFromContext(c)
		if !ok {
			abortUnauthenticated(c)
			return
		}
		if !authz.IsAdminRole(principal.Role) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Admin access denied",
				slog.String("role", string(principal.Role)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Administrator access required",
				"userRole": string(principal.Role),
			})
			return
		}
		c.Next()
	}
}

// RequireSuperAdmin proceeds only for super_admin principals.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipalFromContext(c)
		if !ok {
			abortUnauthenticated(c)
			return
		}
		if principal.Role != authz.RoleSuperAdmin {
			GetLoggerFromCtx(c.Request.Context()).Warn("Super admin access denied",
				slog.String("role", string(principal.Role)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Super administrator access required",
				"userRole": string(principal.Role),
			})
			return
		}
		c.Next()
	}
}
