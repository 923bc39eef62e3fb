package usecase

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/colisgo/colisgo/internal/pkg/apperror"
	"github.com/colisgo/colisgo/internal/pkg/logger"
	"github.com/colisgo/colisgo/internal/pkg/models"
)

// RecordPayment credits a recharge onto the driver's balance and appends the
// ledger entry.
func (uc *billingUC) RecordPayment(ctx context.Context, driverID uuid.UUID, req *models.RecordPaymentRequest) (*models.Driver, error) {
	if req.Amount <= 0 {
		return nil, apperror.Validation("amount must be a positive amount")
	}

	if _, err := uc.billingRepo.GetDriver(ctx, driverID); err != nil {
		return nil, err
	}

	if err := uc.billingRepo.AdjustBalance(ctx, driverID, req.Amount, models.PaymentKindRecharge); err != nil {
		return nil, apperror.Internal("failed to record payment", err)
	}

	driver, err := uc.billingRepo.GetDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	if err := uc.billingGW.PublishPaymentRecorded(ctx, &models.PaymentHistoryEntry{
		DriverID: driverID,
		Amount:   req.Amount,
		Kind:     models.PaymentKindRecharge,
	}); err != nil {
		logger.Warn("Failed to publish payment recorded event",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}

	return driver, nil
}

// GetBalance is the read-side payout view: gross balance, the commission
// that would apply today and the resulting net. Purely computed, nothing is
// mutated.
func (uc *billingUC) GetBalance(ctx context.Context, driverID uuid.UUID) (*models.BalanceSummary, error) {
	driver, err := uc.billingRepo.GetDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	percent := uc.GetCommissionPercent(ctx)
	commission := int64(math.Round(float64(driver.Solde) * percent / 100))

	return &models.BalanceSummary{
		DriverID:          driverID,
		Gross:             driver.Solde,
		CommissionPercent: percent,
		CommissionAmount:  commission,
		Net:               driver.Solde - commission,
	}, nil
}

// ListPayments returns the driver's ledger, newest first
func (uc *billingUC) ListPayments(ctx context.Context, driverID uuid.UUID) ([]models.PaymentHistoryEntry, error) {
	if _, err := uc.billingRepo.GetDriver(ctx, driverID); err != nil {
		return nil, err
	}
	entries, err := uc.billingRepo.ListPayments(ctx, driverID)
	if err != nil {
		return nil, apperror.Internal("failed to list payments", err)
	}
	return entries, nil
}
