package middleware

import (
	"net/http"
	"strings"

	"github.com/flavioscarvalho/agendamento-servico/internal/auth"
	"github.com/flavioscarvalho/agendamento-servico/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	ContextUsername = "username"
	ContextRole     = "role"
)

// Authenticate resolves the current identity from the bearer token and
// stores it on the request context for the handlers.
func Authenticate(tokens *auth.TokenManager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireApprover gates the arbitration and operator endpoints.
func RequireApprover() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if c.GetString(ContextRole) != string(domain.RoleApprover) {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "approver role required"})
			return
		}
		c.Next()
	}
}
