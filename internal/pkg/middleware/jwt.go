package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/jwt"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/utils"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextPassengerID    = "passenger_id"
	ContextPassengerEmail = "passenger_email"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextPassengerID, claims.PassengerID)
			c.Set(ContextPassengerEmail, claims.Email)

			return next(c)
		}
	}
}

// PassengerID returns the authenticated passenger, if any
func PassengerID(c echo.Context) (string, bool) {
	id, ok := c.Get(ContextPassengerID).(string)
	return id, ok && id != ""
}
