package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"venue-booking/internal/domain/user"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/pkg/cookie"
	"venue-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
	ctxClaimsKey   = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required", nil)
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		setActor(c, actor)
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
			return
		}

		if !role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, nil, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		setActor(c, actor)
		c.Next()
	}
}

// extractToken prefers the access cookie over the Authorization header.
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setActor(c *gin.Context, actor user.Actor) {
	c.Set(ctxUserIDKey, actor.ID)
	c.Set(ctxUserRoleKey, actor.Role)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": actor.ID.String(),
		"role":    string(actor.Role),
	})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

// GetActor returns the authenticated caller.
func GetActor(c *gin.Context) (user.Actor, bool) {
	id, ok := GetUserID(c)
	if !ok {
		return user.Actor{}, false
	}
	role, ok := GetUserRole(c)
	if !ok {
		return user.Actor{}, false
	}
	return user.Actor{ID: id, Role: role}, true
}

// GetOptionalActor returns nil for anonymous requests.
func GetOptionalActor(c *gin.Context) *user.Actor {
	actor, ok := GetActor(c)
	if !ok {
		return nil
	}
	return &actor
}
