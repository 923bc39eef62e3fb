package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/colisgo/colisgo/internal/pkg/logger"
	"github.com/colisgo/colisgo/internal/pkg/models"
	nrpkg "github.com/colisgo/colisgo/internal/pkg/newrelic"
	"github.com/colisgo/colisgo/internal/utils"
	"github.com/colisgo/colisgo/services/billing"
)

// BillingHandler handles HTTP requests for billing operations
type BillingHandler struct {
	billingUC billing.BillingUC
}

// NewBillingHandler creates a new billing HTTP handler
func NewBillingHandler(billingUC billing.BillingUC) *BillingHandler {
	return &BillingHandler{billingUC: billingUC}
}

// ChargeCommission is the internal settlement endpoint called by the
// demandes service when a demande is accepted.
func (h *BillingHandler) ChargeCommission(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Billing.ChargeCommission")

	var req models.SettlementRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.DriverID == uuid.Nil || req.DemandeID == uuid.Nil {
		return utils.BadRequestResponse(c, "driver_id and demande_id are required")
	}

	result, err := h.billingUC.ChargeCommission(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Settlement failed",
			logger.String("demande_id", req.DemandeID.String()),
			logger.String("driver_id", req.DriverID.String()),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Commission charged", result)
}

// GetBalance returns the gross/commission/net payout view of a driver
func (h *BillingHandler) GetBalance(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver id")
	}

	summary, err := h.billingUC.GetBalance(c.Request().Context(), driverID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", summary)
}

// RecordPayment credits a recharge onto a driver's balance
func (h *BillingHandler) RecordPayment(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver id")
	}

	var req models.RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	driver, err := h.billingUC.RecordPayment(c.Request().Context(), driverID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Payment recorded", driver)
}

// ListPayments returns a driver's ledger, newest first
func (h *BillingHandler) ListPayments(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver id")
	}

	entries, err := h.billingUC.ListPayments(c.Request().Context(), driverID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.ListResponse(c, len(entries), entries)
}

// GetCommission returns the current platform percentage
func (h *BillingHandler) GetCommission(c echo.Context) error {
	percent := h.billingUC.GetCommissionPercent(c.Request().Context())
	return utils.SuccessResponse(c, http.StatusOK, "", map[string]float64{"percent": percent})
}

// UpdateCommission is the admin percentage update
func (h *BillingHandler) UpdateCommission(c echo.Context) error {
	var req models.UpdateCommissionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	setting, err := h.billingUC.UpdateCommissionPercent(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Commission updated", setting)
}
