package middleware

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bistro-systems/table-reserve/internal/httperr"
	"github.com/bistro-systems/table-reserve/internal/models"
	"github.com/bistro-systems/table-reserve/internal/token"
)

const (
	ContextUserEmail = "userEmail"
	ContextUserName  = "userName"
	ContextUserRole  = "userRole"
)

// CookieName is where the browser carries the token; the Authorization
// header is the fallback for non-browser clients.
const CookieName = "token"

// Identify resolves the caller's identity from the token cookie or the
// Bearer header and stores it in the request context. It never aborts:
// missing or invalid tokens leave the request anonymous and endpoint-level
// guards decide whether that is acceptable.
func Identify(svc *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := extractToken(c)
		if raw == "" {
			c.Next()
			return
		}

		claims, err := svc.Verify(raw)
		if err != nil {
			log.Printf("token rejected: %v", err)
			c.Next()
			return
		}

		c.Set(ContextUserEmail, claims.Subject)
		c.Set(ContextUserName, claims.Name)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

// Cookie first, then Authorization: Bearer.
func extractToken(c *gin.Context) string {
	if raw, err := c.Cookie(CookieName); err == nil && raw != "" {
		return raw
	}

	auth := c.GetHeader("Authorization")
	if auth == "" {
		return ""
	}

	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CallerEmail(c) == "" {
			httperr.Unauthorized(c, "unauthorized", "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CallerEmail(c) == "" {
			httperr.Unauthorized(c, "unauthorized", "authentication required")
			c.Abort()
			return
		}
		if CallerRole(c) != models.RoleAdmin {
			httperr.Forbidden(c, "forbidden", "admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func CallerEmail(c *gin.Context) string {
	return c.GetString(ContextUserEmail)
}

func CallerRole(c *gin.Context) string {
	return c.GetString(ContextUserRole)
}
