package middleware

import (
	"strings"

	"mesauth/internal/delivery/http/response"
	"mesauth/internal/domain/entity"
	"mesauth/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID   = "userID"
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_INVALID", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		claims, err := m.authUC.Authenticate(c.Request().Context(), tokenString)
		if err != nil {
			// Expired and malformed tokens share one answer here; the error
			// middleware would leak the distinction into the envelope.
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUsername, claims.Username)
		c.Set(ContextKeyRole, claims.Role)

		return next(c)
	}
}

// RequireCapability is a middleware factory that checks one capability of the
// authenticated user's role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireCapability(capability func(entity.CapabilitySet) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !capability(role.Capabilities()) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied for role '"+role.String()+"'")
			}

			return next(c)
		}
	}
}
