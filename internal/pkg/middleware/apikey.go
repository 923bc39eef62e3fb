package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/colisgo/colisgo/internal/pkg/models"
	"github.com/colisgo/colisgo/internal/utils"
)

// APIKeyHeader is the header carrying the service-to-service key
const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware validates keys for internal service-to-service routes
type APIKeyMiddleware struct {
	keys map[string]string
}

// NewAPIKeyMiddleware creates the middleware from configured per-service keys
func NewAPIKeyMiddleware(cfg *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		keys: map[string]string{
			"demandes-service": cfg.DemandesService,
			"billing-service":  cfg.BillingService,
			"trajets-service":  cfg.TrajetsService,
		},
	}
}

// Handler returns middleware accepting calls that present the key of any of
// the allowed services.
func (m *APIKeyMiddleware) Handler(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			for _, service := range allowedServices {
				expected := m.keys[service]
				if expected != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) == 1 {
					return next(c)
				}
			}

			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
		}
	}
}
