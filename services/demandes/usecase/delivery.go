package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/colisgo/colisgo/internal/pkg/apperror"
	"github.com/colisgo/colisgo/internal/pkg/logger"
	"github.com/colisgo/colisgo/internal/pkg/models"
)

// AdvanceDeliveryStatus moves the cargo-handling track forward. The track is
// a fixed five-step total order and never regresses; each successful move
// appends a timestamped history record.
func (uc *demandeUC) AdvanceDeliveryStatus(ctx context.Context, id uuid.UUID, req *models.AdvanceDeliveryRequest) (*models.Demande, error) {
	if !req.Status.Valid() {
		return nil, apperror.Validation("unknown delivery status: " + string(req.Status))
	}

	demande, err := uc.demandeRepo.GetDemande(ctx, id)
	if err != nil {
		return nil, err
	}

	if demande.DeliveryStatus != "" && req.Status.Ordinal() < demande.DeliveryStatus.Ordinal() {
		return nil, apperror.Validation("delivery status cannot regress")
	}

	if err := uc.demandeRepo.AppendDeliveryEvent(ctx, id, req.Status); err != nil {
		return nil, apperror.Internal("failed to record delivery status", err)
	}

	updated, err := uc.demandeRepo.GetDemande(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.demandeGW.PublishDeliveryUpdated(ctx, updated); err != nil {
		logger.Warn("Failed to publish delivery updated event",
			logger.String("demande_id", id.String()),
			logger.Err(err))
	}

	return updated, nil
}
