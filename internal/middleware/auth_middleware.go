package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/collegehub/internal/app/models/dto"
	"github.com/emre/collegehub/internal/pkg/auth"
)

// Context keys populated by JWTAuth for downstream handlers
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// AuthMiddleware provides the authentication and authorization gates
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth extracts a bearer token from the Authorization header, verifies it
// and attaches the decoded claims to the request context. Missing or expired
// tokens short-circuit with 401, tampered or malformed tokens with 403.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("No token provided"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrMissingToken):
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("No token provided"))
			case errors.Is(err, auth.ErrExpiredToken):
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Token expired"))
			default:
				c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Invalid token"))
			}
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RoleRequired checks that the authenticated role is in the allowed set.
// Role sets are explicit per route; admin does not implicitly satisfy a
// teacher-only check. Must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			// Claims absent means JWTAuth never ran; deny rather than crash
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Access denied"))
			return
		}

		roleStr, ok := role.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Access denied"))
			return
		}

		for _, allowed := range roles {
			if roleStr == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Access denied"))
	}
}
