// Package middleware provides gin middleware for authentication and role
// based access control.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "github.com/hireline/applicant-tracking-api/internal/errors"
	"github.com/hireline/applicant-tracking-api/internal/security"
)

// Context keys populated by RequireRole.
const (
	ContextUserID = "userID"
	ContextRole   = "userRole"
)

// RequireRole gates a route to the given roles. Requests without a token
// are treated as the anonymous "user" role, so public routes list "user"
// among their allowed roles. Invalid or expired tokens are rejected even
// on public routes.
func RequireRole(tokens *security.TokenProvider, allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			if _, ok := allowed["user"]; ok {
				c.Set(ContextRole, "user")
				c.Next()
				return
			}
			apierrors.Unauthorized(c, "No token provided")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := tokens.Parse(token)
		if err != nil {
			apierrors.Unauthorized(c, "Failed to authenticate token")
			c.Abort()
			return
		}

		if _, ok := allowed[claims.Role]; !ok {
			apierrors.Forbidden(c, "You do not have permission to access this resource")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// UserID returns the authenticated user id, if any.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// Role returns the effective role of the request.
func Role(c *gin.Context) string {
	return c.GetString(ContextRole)
}
