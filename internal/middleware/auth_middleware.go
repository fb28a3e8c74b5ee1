package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/medibook/backend-go/internal/gate"
	"github.com/medibook/backend-go/internal/identity"
)

// identityContextKey is where the resolved identity lives in the gin
// context.
const identityContextKey = "identity"

// AuthMiddleware resolves the provider bearer token into an Identity.
type AuthMiddleware struct {
	provider identity.Provider
	logger   *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware instance
func NewAuthMiddleware(provider identity.Provider, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		provider: provider,
		logger:   logger,
	}
}

// RequireIdentity rejects requests without a valid provider token. Used
// on the JSON API surface.
func (m *AuthMiddleware) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := m.resolve(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing identity token"})
			c.Abort()
			return
		}

		c.Set(identityContextKey, ident)
		m.logger.Debug("✅ [Middleware] Identity resolved", "external_id", ident.ExternalID)

		c.Next()
	}
}

// ResolveIdentity resolves the identity when a token is present but never
// rejects: page gates decide what an absent identity means (usually a
// redirect, not a 401).
func (m *AuthMiddleware) ResolveIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ident, ok := m.resolve(c); ok {
			c.Set(identityContextKey, ident)
		}
		c.Next()
	}
}

func (m *AuthMiddleware) resolve(c *gin.Context) (*identity.Identity, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		m.logger.Warn("⚠️ [Middleware] Invalid Authorization header format")
		return nil, false
	}

	ident, err := m.provider.Verify(parts[1])
	if err != nil {
		m.logger.Warn("⚠️ [Middleware] Invalid identity token", "error", err)
		return nil, false
	}

	return ident, true
}

// RequireAdmin restricts an API route to the configured admin. Runs after
// RequireIdentity, so an identity is already present.
func (m *AuthMiddleware) RequireAdmin(adminEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := IdentityFromContext(c)
		if decision := gate.CheckAdmin(ident, adminEmail); !decision.Allowed {
			m.logger.Warn("⚠️ [Middleware] Admin route denied", "reason", decision.Reason)
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// IdentityFromContext returns the identity set by the middleware, or nil
// when the caller is unauthenticated.
func IdentityFromContext(c *gin.Context) *identity.Identity {
	value, exists := c.Get(identityContextKey)
	if !exists {
		return nil
	}
	ident, ok := value.(*identity.Identity)
	if !ok {
		return nil
	}
	return ident
}
