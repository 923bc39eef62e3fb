package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/colisgo/colisgo/internal/pkg/apperror"
	"github.com/colisgo/colisgo/internal/pkg/logger"
	"github.com/colisgo/colisgo/internal/pkg/models"
)

// ProposePrice records one side's offer. The demande record itself carries
// the negotiation state: the submitting side's flag is set and the
// counter-party's flag is cleared, so at most the latest proposer holds the
// turn. Alternation is not enforced, either side may offer twice in a row.
func (uc *demandeUC) ProposePrice(ctx context.Context, id uuid.UUID, req *models.ProposePriceRequest) (*models.Demande, error) {
	if req.Price <= 0 {
		return nil, apperror.Validation("price must be a positive amount")
	}
	if req.Proposer != models.ProposerSideUser && req.Proposer != models.ProposerSideDriver {
		return nil, apperror.Validation("proposer must be 'user' or 'driver'")
	}

	demande, err := uc.demandeRepo.GetDemande(ctx, id)
	if err != nil {
		return nil, err
	}

	if demande.Status.Terminal() {
		return nil, apperror.Conflict("negotiation is closed for this demande")
	}
	if req.Price == demande.ProposedPrice {
		return nil, apperror.Validation("price must differ from the current offer")
	}

	demande.ProposedPrice = req.Price
	demande.Status = models.DemandeStatusInProgress
	switch req.Proposer {
	case models.ProposerSideDriver:
		demande.ProposerDriver = true
		demande.ProposerUser = false
	case models.ProposerSideUser:
		demande.ProposerUser = true
		demande.ProposerDriver = false
	}

	updated, err := uc.demandeRepo.UpdateDemande(ctx, demande)
	if err != nil {
		return nil, apperror.Internal("failed to persist price proposal", err)
	}

	if err := uc.demandeGW.PublishDemandeUpdated(ctx, updated); err != nil {
		logger.Warn("Failed to publish demande updated event",
			logger.String("demande_id", id.String()),
			logger.Err(err))
	}

	return updated, nil
}
