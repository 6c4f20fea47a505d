package token

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextIdentity is the Gin context key under which the resolved identity
// is stored for downstream handlers.
const ContextIdentity = "authIdentity"

// Identity is the resolved caller attached to the request context after a
// token has been verified and its subject looked up.
type Identity struct {
	ID    uint
	Email string
	Name  string
	Role  string
}

// Verifier validates a token string and returns its claims.
// Following Go convention, the interface is defined by the consumer
// (middleware), not the provider.
type Verifier interface {
	Verify(tokenString string) (*Claims, error)
}

// IdentityResolver looks up the user behind a token subject.
// Implemented by the auth usecase.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, email string) (*Identity, error)
}

// AuthRequired returns a middleware that authenticates the request.
//
// The Authorization header must consist of exactly two space-separated
// fields with a case-insensitive "bearer" scheme. The token is verified,
// its subject resolved against the user store, and the resulting Identity
// stored in the context. Any failure aborts with 401; the reason is logged
// server-side but not disclosed to the client.
func AuthRequired(tokens Verifier, users IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := strings.Fields(c.GetHeader("Authorization"))
		if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := tokens.Verify(fields[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		if claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token payload"})
			return
		}

		// Re-resolve the subject so a stale token for a vanished user
		// cannot authenticate.
		identity, err := users.ResolveIdentity(c.Request.Context(), claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}

		c.Set(ContextIdentity, identity)
		c.Next()
	}
}

// RequireRole returns a middleware that rejects authenticated requests whose
// resolved role is not in allowed. It must run after AuthRequired.
func RequireRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		for _, role := range allowed {
			if identity.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
	}
}

// IdentityFromContext retrieves the identity stored by AuthRequired.
func IdentityFromContext(c *gin.Context) (*Identity, bool) {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*Identity)
	return identity, ok
}
