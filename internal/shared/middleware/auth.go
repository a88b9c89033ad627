package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"blog-backend/internal/shared/response"
	"blog-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "userID"
	ContextClaims = "claims"
)

type userIDKey struct{}

// TokenVerifier is satisfied by *jwt.Manager.
type TokenVerifier interface {
	VerifyToken(token string) (*jwt.Claims, error)
}

// AuthMiddleware requires a "Bearer <token>" Authorization header.
// Missing or bad tokens get 401, expired ones 403.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.AbortFail(c, http.StatusUnauthorized, "missing authorization header")
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.AbortFail(c, http.StatusUnauthorized, "invalid authorization header format")
			return
		}

		claims, err := verifier.VerifyToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrForbidden) {
				response.AbortFail(c, http.StatusForbidden, "token expired")
				return
			}
			response.AbortFail(c, http.StatusUnauthorized, "invalid token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextClaims, claims)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), userIDKey{}, claims.UserID))

		c.Next()
	}
}

// GetUserID returns the authenticated user id set by AuthMiddleware.
func GetUserID(c *gin.Context) (int, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok && id > 0
}

// UserIDFromContext reads the id from a plain context.Context, for code
// below the handler layer.
func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey{}).(int)
	return id, ok && id > 0
}
