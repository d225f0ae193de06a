package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enrolldesk/enrolldesk/internal/app/models/dto"
	"github.com/enrolldesk/enrolldesk/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextRole     = "role"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth validates the bearer token and stores the caller's identity on the
// request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse("Authentication required"))
			return
		}

		tokenString, err := auth.ExtractBearerToken(header)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse("Invalid token format"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "Invalid token"
			if err == auth.ErrExpiredToken {
				message = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RoleRequired rejects callers whose token does not carry the required role.
// JWTAuth must run first.
func (m *AuthMiddleware) RoleRequired(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse("Authentication required"))
			return
		}

		roleStr, ok := role.(string)
		if !ok || roleStr != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse("Access denied. Admin privileges required."))
			return
		}

		c.Next()
	}
}
