package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/colisgo/colisgo/internal/pkg/middleware"
	"github.com/colisgo/colisgo/internal/pkg/models"
	"github.com/colisgo/colisgo/services/billing"
	httpHandler "github.com/colisgo/colisgo/services/billing/handler/http"
)

// Handler combines all handlers for the billing service
type Handler struct {
	billingHTTP *httpHandler.BillingHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(billingUC billing.BillingUC, cfg *models.Config) *Handler {
	return &Handler{
		billingHTTP: httpHandler.NewBillingHandler(billingUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	apiKey := middleware.NewAPIKeyMiddleware(&h.cfg.APIKey)

	// internal routes for service-to-service calls
	internal := e.Group("/internal", apiKey.Handler("demandes-service", "trajets-service"))
	internal.POST("/settlements", h.billingHTTP.ChargeCommission)
	internal.GET("/balances/:driverID", h.billingHTTP.GetBalance)
	internal.POST("/balances/:driverID/payments", h.billingHTTP.RecordPayment)
	internal.GET("/drivers/:driverID/payments", h.billingHTTP.ListPayments)

	// commission registry
	e.GET("/commission", h.billingHTTP.GetCommission)
	e.PUT("/commission", h.billingHTTP.UpdateCommission, apiKey.Handler("demandes-service"))
}
