package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukta/backend/internal/app/models"
	"github.com/edukta/backend/internal/app/models/dto"
	"github.com/edukta/backend/internal/pkg/auth"
)

// Context keys set by JWTAuth.
const (
	ContextUserID     = "userID"
	ContextUserRoleID = "userRoleID"
)

// AuthCookieName is the cookie checked when no Authorization header is sent.
// The OAuth callback sets the token there because a browser redirect cannot
// carry a header.
const AuthCookieName = "auth_token"

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the access token and loads its claims into the context.
// The token is taken from the Authorization header, falling back to the
// auth_token cookie.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			extracted, err := auth.ExtractBearerToken(authHeader)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					dto.NewAPIResponse(http.StatusUnauthorized, "Invalid token format", nil))
				return
			}
			tokenString = extracted
		} else if cookieToken, err := c.Cookie(AuthCookieName); err == nil {
			tokenString = cookieToken
		}

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewAPIResponse(http.StatusUnauthorized, "Authentication required", nil))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewAPIResponse(http.StatusUnauthorized, message, nil))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRoleID, claims.UserRoleID)

		c.Next()
	}
}

// RoleRequired allows only the given roles past. Admins pass every gate.
func (m *AuthMiddleware) RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(ContextUserRoleID)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewAPIResponse(http.StatusUnauthorized, "Authentication required", nil))
			return
		}

		role, ok := roleValue.(models.Role)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewAPIResponse(http.StatusInternalServerError, "", nil))
			return
		}

		if role == models.RoleAdmin {
			c.Next()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden,
			dto.NewAPIResponse(http.StatusForbidden, "Permission denied", nil))
	}
}

// CurrentUserID returns the authenticated user's ID from the context.
func CurrentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}

// CurrentUserRole returns the authenticated user's role from the context.
func CurrentUserRole(c *gin.Context) (models.Role, bool) {
	value, exists := c.Get(ContextUserRoleID)
	if !exists {
		return 0, false
	}
	role, ok := value.(models.Role)
	return role, ok
}
