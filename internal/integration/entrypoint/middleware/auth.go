// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fincheck/backend/internal/application/adapter"
	domainerror "github.com/fincheck/backend/internal/domain/error"
	"github.com/fincheck/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

// UserIDKey is the context key for the authenticated user's ID.
const UserIDKey ContextKey = "user_id"

// AuthMiddleware provides JWT authentication middleware.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT
// authentication. Every failure mode produces the same response body so a
// caller cannot probe whether a token is absent, malformed, or expired.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			m.reject(c)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			m.reject(c)
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(token)
		if err != nil {
			m.reject(c)
			return
		}

		c.Set(string(UserIDKey), claims.UserID)
		c.Next()
	}
}

func (m *AuthMiddleware) reject(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Invalid or missing credentials",
		Code:  string(domainerror.ErrCodeInvalidToken),
	})
	c.Abort()
}

// GetUserIDFromContext extracts the authenticated user's ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}
