package middleware

import (
	"net/http"
	"strings"

	"bastion/internal/domain/entity"
	"bastion/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID      = "userID"
	ContextKeyRole        = "role"
	ContextKeyAccessToken = "accessToken"
)

// AuthMiddleware provides middleware for access token authentication and authorization.
type AuthMiddleware struct {
	authUc usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUc usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUc: authUc}
}

// Authenticate validates the bearer token through the auth use case, so
// revoked sessions are rejected even while their tokens are unexpired.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		info, err := m.authUc.VerifyAccessToken(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, info.UserID)
		c.Set(ContextKeyRole, info.Role)
		c.Set(ContextKeyAccessToken, tokenString)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if role != requiredRole {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + requiredRole.String() + "' role"})
			}

			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user's ID set by Authenticate.
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return id, ok
}

// AccessTokenFromContext returns the raw bearer token set by Authenticate.
func AccessTokenFromContext(c echo.Context) (string, bool) {
	token, ok := c.Get(ContextKeyAccessToken).(string)

	return token, ok
}
