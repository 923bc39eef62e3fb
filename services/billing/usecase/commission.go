package usecase

import (
	"context"
	"math"

	"github.com/colisgo/colisgo/internal/pkg/apperror"
	"github.com/colisgo/colisgo/internal/pkg/logger"
	"github.com/colisgo/colisgo/internal/pkg/models"
)

// GetCommissionPercent returns the platform commission percentage. The most
// recently saved setting wins; with no setting, or when the registry cannot
// be read, the configured default applies. This read never fails because
// settlement depends on it.
func (uc *billingUC) GetCommissionPercent(ctx context.Context) float64 {
	if pct, ok := uc.cache.GetPercent(ctx); ok {
		return pct
	}

	setting, err := uc.billingRepo.GetCommissionSetting(ctx)
	if err != nil {
		if !apperror.IsNotFound(err) {
			logger.Warn("Commission registry unavailable, using default",
				logger.Float64("default", uc.cfg.Billing.DefaultCommissionPercent),
				logger.Err(err))
		}
		return uc.cfg.Billing.DefaultCommissionPercent
	}

	uc.cache.SetPercent(ctx, setting.Percent)
	return setting.Percent
}

// UpdateCommissionPercent saves a new platform percentage and invalidates
// the cached value so the next settlement sees it.
func (uc *billingUC) UpdateCommissionPercent(ctx context.Context, req *models.UpdateCommissionRequest) (*models.CommissionSetting, error) {
	if req.Percent == nil {
		return nil, apperror.Validation("percent is required")
	}
	if *req.Percent < 0 || *req.Percent > 100 {
		return nil, apperror.Validation("percent must be between 0 and 100")
	}

	setting, err := uc.billingRepo.SaveCommissionSetting(ctx, *req.Percent)
	if err != nil {
		return nil, apperror.Internal("failed to save commission setting", err)
	}

	uc.cache.Invalidate(ctx)

	logger.Info("Commission percentage updated",
		logger.Float64("percent", setting.Percent))

	return setting, nil
}

// ChargeCommission deducts the platform's cut of an accepted demande from
// the driver's balance. The amount is rounded once, at the point the
// percentage is applied; the balance may go negative, representing the
// amount owed to the platform until the next payout.
func (uc *billingUC) ChargeCommission(ctx context.Context, req *models.SettlementRequest) (*models.SettlementResult, error) {
	if req.Price <= 0 {
		return nil, apperror.Validation("price must be a positive amount")
	}

	if _, err := uc.billingRepo.GetDriver(ctx, req.DriverID); err != nil {
		return nil, err
	}

	percent := uc.GetCommissionPercent(ctx)
	amount := int64(math.Round(float64(req.Price) * percent / 100))

	if err := uc.billingRepo.AdjustBalance(ctx, req.DriverID, -amount, models.PaymentKindCommission); err != nil {
		return nil, apperror.Internal("failed to charge commission", err)
	}

	result := &models.SettlementResult{
		DemandeID:         req.DemandeID,
		DriverID:          req.DriverID,
		CommissionPercent: percent,
		CommissionAmount:  amount,
	}

	if err := uc.billingGW.PublishCommissionCharged(ctx, result); err != nil {
		logger.Warn("Failed to publish commission charged event",
			logger.String("demande_id", req.DemandeID.String()),
			logger.Err(err))
	}

	return result, nil
}
