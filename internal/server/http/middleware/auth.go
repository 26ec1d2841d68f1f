package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arkhipovds/leadbox/internal/domain/model"
	pkgAuth "github.com/arkhipovds/leadbox/internal/pkg/auth"
)

// CurrentUserContextKey is a gin context key for the resolved request identity.
const CurrentUserContextKey = "currentUser"

// UserResolver turns a presented token into the current user.
type UserResolver interface {
	ResolveToken(ctx context.Context, token string) (*model.User, error)
}

// AuthRequired resolves the bearer token into a user before any handler
// logic runs. Every token failure, whatever its internal kind, collapses to
// a bare 401 here so responses never reveal why a token was rejected.
func AuthRequired(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		user, err := resolver.ResolveToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(CurrentUserContextKey, user)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
