package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/colisgo/colisgo/internal/pkg/apperror"
	"github.com/colisgo/colisgo/internal/pkg/logger"
	"github.com/colisgo/colisgo/internal/pkg/models"
)

// AcceptDemande closes the negotiation in the driver's favor. Accepting an
// already-accepted demande is a no-op with respect to billing: commission is
// charged exactly once, on the first transition into accepted.
func (uc *demandeUC) AcceptDemande(ctx context.Context, id uuid.UUID) (*models.Demande, error) {
	demande, err := uc.demandeRepo.GetDemande(ctx, id)
	if err != nil {
		return nil, err
	}

	if demande.Status == models.DemandeStatusAccepted {
		return demande, nil
	}
	if demande.Status == models.DemandeStatusRejected {
		return nil, apperror.Conflict("demande has already been rejected")
	}
	// a pending demande carries at most the rider's opening offer; the
	// driver must have countered or confirmed before acceptance
	if demande.Status == models.DemandeStatusPending && !demande.ProposerDriver {
		return nil, apperror.Validation("a driver proposal is required before acceptance")
	}

	if err := uc.settle(ctx, demande); err != nil {
		return nil, err
	}

	demande.Status = models.DemandeStatusAccepted
	demande.ProposerDriver = true

	updated, err := uc.demandeRepo.UpdateDemande(ctx, demande)
	if err != nil {
		// commission already charged; surface for out-of-band reconciliation
		logger.Error("Demande status persist failed after settlement",
			logger.String("demande_id", id.String()),
			logger.Err(err))
		return nil, apperror.Internal("failed to persist acceptance", err)
	}

	if err := uc.demandeGW.PublishDemandeAccepted(ctx, updated); err != nil {
		logger.Warn("Failed to publish demande accepted event",
			logger.String("demande_id", id.String()),
			logger.Err(err))
	}

	return updated, nil
}

// RejectDemande closes the negotiation unconditionally
func (uc *demandeUC) RejectDemande(ctx context.Context, id uuid.UUID) (*models.Demande, error) {
	demande, err := uc.demandeRepo.GetDemande(ctx, id)
	if err != nil {
		return nil, err
	}

	if demande.Status == models.DemandeStatusAccepted {
		return nil, apperror.Conflict("demande has already been accepted")
	}

	demande.Status = models.DemandeStatusRejected

	updated, err := uc.demandeRepo.UpdateDemande(ctx, demande)
	if err != nil {
		return nil, apperror.Internal("failed to persist rejection", err)
	}

	if err := uc.demandeGW.PublishDemandeRejected(ctx, updated); err != nil {
		logger.Warn("Failed to publish demande rejected event",
			logger.String("demande_id", id.String()),
			logger.Err(err))
	}

	return updated, nil
}

// settle charges the platform commission through the billing service and
// snapshots the applied percentage onto the demande. The caller guarantees
// the stored status is not already accepted; the balance decrement itself is
// atomic on the billing side, so concurrent settlements of different demandes
// against one driver both land.
func (uc *demandeUC) settle(ctx context.Context, demande *models.Demande) error {
	if demande.DriverID == nil {
		return apperror.Validation("cannot accept a demande without an assigned driver")
	}
	if demande.ProposedPrice <= 0 {
		return apperror.Validation("cannot accept a demande without an agreed price")
	}

	result, err := uc.billing.ChargeCommission(ctx, &models.SettlementRequest{
		DemandeID: demande.ID,
		DriverID:  *demande.DriverID,
		Price:     demande.ProposedPrice,
	})
	if err != nil {
		logger.Error("Commission settlement failed",
			logger.String("demande_id", demande.ID.String()),
			logger.String("driver_id", demande.DriverID.String()),
			logger.Err(err))
		return apperror.Internal("commission settlement failed", err)
	}

	// audit snapshot; never recomputed from the registry afterwards
	demande.CommissionPercent = &result.CommissionPercent

	logger.Info("Commission settled",
		logger.String("demande_id", demande.ID.String()),
		logger.String("driver_id", demande.DriverID.String()),
		logger.Float64("percent", result.CommissionPercent),
		logger.Int64("amount", result.CommissionAmount))

	return nil
}
