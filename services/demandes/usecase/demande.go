package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/colisgo/colisgo/internal/pkg/apperror"
	"github.com/colisgo/colisgo/internal/pkg/logger"
	"github.com/colisgo/colisgo/internal/pkg/models"
)

// CreateDemande validates and persists a new transport request. The cargo
// set must be non-empty and every baggage id must resolve.
func (uc *demandeUC) CreateDemande(ctx context.Context, req *models.CreateDemandeRequest) (*models.Demande, error) {
	if req.UserID == uuid.Nil {
		return nil, apperror.Validation("user_id is required")
	}
	if req.PickupPoint == "" || req.DropoffPoint == "" {
		return nil, apperror.Validation("pickup_point and dropoff_point are required")
	}
	if req.ProposedPrice < 0 {
		return nil, apperror.Validation("proposed_price cannot be negative")
	}
	if err := uc.resolveBaggages(ctx, req.BaggageIDs); err != nil {
		return nil, err
	}

	demande := &models.Demande{
		ID:            uuid.New(),
		UserID:        req.UserID,
		DriverID:      req.DriverID,
		TrajetID:      req.TrajetID,
		PickupPoint:   req.PickupPoint,
		DropoffPoint:  req.DropoffPoint,
		PortDepart:    req.PortDepart,
		PortArrivee:   req.PortArrivee,
		TotalWeightKg: req.TotalWeightKg,
		ProposedPrice: req.ProposedPrice,
		// the rider opens the negotiation when a price accompanies creation
		ProposerUser: req.ProposedPrice > 0,
		Status:       models.DemandeStatusPending,
		BaggageIDs:   req.BaggageIDs,
	}

	created, err := uc.demandeRepo.CreateDemande(ctx, demande)
	if err != nil {
		logger.Error("Failed to create demande",
			logger.String("user_id", req.UserID.String()),
			logger.Err(err))
		return nil, apperror.Internal("failed to create demande", err)
	}

	if err := uc.demandeGW.PublishDemandeCreated(ctx, created); err != nil {
		logger.Warn("Failed to publish demande created event",
			logger.String("demande_id", created.ID.String()),
			logger.Err(err))
	}

	return created, nil
}

// GetDemande fetches one demande with its cargo and delivery history
func (uc *demandeUC) GetDemande(ctx context.Context, id uuid.UUID) (*models.Demande, error) {
	return uc.demandeRepo.GetDemande(ctx, id)
}

// ListDemandes returns all demandes, most recently updated first
func (uc *demandeUC) ListDemandes(ctx context.Context) ([]*models.Demande, error) {
	return uc.demandeRepo.ListDemandes(ctx)
}

func (uc *demandeUC) ListDemandesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Demande, error) {
	return uc.demandeRepo.ListDemandesByUser(ctx, userID)
}

func (uc *demandeUC) ListDemandesByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Demande, error) {
	return uc.demandeRepo.ListDemandesByDriver(ctx, driverID)
}

// ListDemandesByDriverAndTrajet returns the accepted demandes a driver
// carries on one trajet.
func (uc *demandeUC) ListDemandesByDriverAndTrajet(ctx context.Context, driverID, trajetID uuid.UUID) ([]*models.Demande, error) {
	return uc.demandeRepo.ListDemandesByDriverAndTrajet(ctx, driverID, trajetID)
}

func (uc *demandeUC) ListDemandesByStatus(ctx context.Context, status models.DemandeStatus) ([]*models.Demande, error) {
	if !status.Valid() {
		return nil, apperror.Validation("unknown status: " + string(status))
	}
	return uc.demandeRepo.ListDemandesByStatus(ctx, status)
}

// UpdateDemande applies a partial update of the commercial fields. A status
// transition into accepted goes through the same settlement path as
// AcceptDemande, so commission is charged at most once per demande.
func (uc *demandeUC) UpdateDemande(ctx context.Context, id uuid.UUID, patch *models.DemandePatch) (*models.Demande, error) {
	demande, err := uc.demandeRepo.GetDemande(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.BaggageIDs != nil {
		if err := uc.resolveBaggages(ctx, patch.BaggageIDs); err != nil {
			return nil, err
		}
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, apperror.Validation("unknown status: " + string(*patch.Status))
	}
	if patch.ProposedPrice != nil && *patch.ProposedPrice < 0 {
		return nil, apperror.Validation("proposed_price cannot be negative")
	}

	storedStatus := demande.Status
	applyPatch(demande, patch)

	// settlement fires only on a transition into accepted from a stored
	// status that is not already accepted
	if patch.Status != nil && *patch.Status == models.DemandeStatusAccepted &&
		storedStatus != models.DemandeStatusAccepted {
		if err := uc.settle(ctx, demande); err != nil {
			return nil, err
		}
	}

	updated, err := uc.demandeRepo.UpdateDemande(ctx, demande)
	if err != nil {
		return nil, err
	}

	if patch.BaggageIDs != nil {
		if err := uc.demandeRepo.ReplaceBaggages(ctx, id, patch.BaggageIDs); err != nil {
			return nil, apperror.Internal("failed to replace baggages", err)
		}
		updated.BaggageIDs = patch.BaggageIDs
	}

	if err := uc.demandeGW.PublishDemandeUpdated(ctx, updated); err != nil {
		logger.Warn("Failed to publish demande updated event",
			logger.String("demande_id", id.String()),
			logger.Err(err))
	}

	return updated, nil
}

// DeleteDemande is an administrative escape hatch, not part of the lifecycle
func (uc *demandeUC) DeleteDemande(ctx context.Context, id uuid.UUID) error {
	return uc.demandeRepo.DeleteDemande(ctx, id)
}

func (uc *demandeUC) resolveBaggages(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return apperror.Validation("at least one baggage is required")
	}
	resolved, err := uc.demandeRepo.ResolveBaggages(ctx, ids)
	if err != nil {
		return apperror.Internal("failed to resolve baggages", err)
	}
	if len(resolved) != len(ids) {
		return apperror.Validation("one or more baggage ids do not exist")
	}
	return nil
}

func applyPatch(d *models.Demande, patch *models.DemandePatch) {
	if patch.DriverID != nil {
		d.DriverID = patch.DriverID
	}
	if patch.TrajetID != nil {
		d.TrajetID = patch.TrajetID
	}
	if patch.PickupPoint != nil {
		d.PickupPoint = *patch.PickupPoint
	}
	if patch.DropoffPoint != nil {
		d.DropoffPoint = *patch.DropoffPoint
	}
	if patch.PortDepart != nil {
		d.PortDepart = *patch.PortDepart
	}
	if patch.PortArrivee != nil {
		d.PortArrivee = *patch.PortArrivee
	}
	if patch.TotalWeightKg != nil {
		d.TotalWeightKg = *patch.TotalWeightKg
	}
	if patch.ProposedPrice != nil {
		d.ProposedPrice = *patch.ProposedPrice
	}
	if patch.Status != nil {
		d.Status = *patch.Status
	}
}
