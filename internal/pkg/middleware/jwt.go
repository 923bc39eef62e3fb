package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/colisgo/colisgo/internal/pkg/jwt"
	"github.com/colisgo/colisgo/internal/pkg/models"
	"github.com/colisgo/colisgo/internal/utils"
)

// Context keys set by BearerAuth
const (
	ContextPrincipalID   = "principal_id"
	ContextPrincipalKind = "principal_kind"
	ContextIsVerified    = "is_verified"
)

// BearerAuth validates tokens issued by the external identity service and
// attaches the resolved principal to the request context.
func BearerAuth(cfg models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwt.ValidateToken(parts[1], cfg)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextPrincipalID, claims.PrincipalID)
			c.Set(ContextPrincipalKind, claims.PrincipalKind)
			c.Set(ContextIsVerified, claims.IsVerified)

			return next(c)
		}
	}
}

// PrincipalID returns the authenticated principal id, empty when absent
func PrincipalID(c echo.Context) string {
	if id, ok := c.Get(ContextPrincipalID).(string); ok {
		return id
	}
	return ""
}
