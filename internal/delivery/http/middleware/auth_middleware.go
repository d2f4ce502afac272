// Package middleware contains the HTTP middleware for the delivery layer.
package middleware

import (
	"strings"

	"bookswap/internal/delivery/http/response"
	"bookswap/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// userIDKey is the echo context key the authenticated user id is stored under.
const userIDKey = "userID"

// AuthMiddleware validates session tokens on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate checks the Authorization header and stores the caller's id on
// the request context. A missing header is 401; any token that fails
// validation is 403, with one message for every failure cause.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Forbidden(c, "AUTH_FAILURE", "Invalid or expired token")
		}

		c.Set(userIDKey, claims.UserID)

		return next(c)
	}
}

// GetUserID returns the authenticated user's id set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(userIDKey).(uuid.UUID)

	return userID, ok
}
