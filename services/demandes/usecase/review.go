package usecase

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/colisgo/colisgo/internal/pkg/apperror"
	"github.com/colisgo/colisgo/internal/pkg/logger"
	"github.com/colisgo/colisgo/internal/pkg/models"
)

// AttachReview records post-trip feedback. No terminal-state guard: a rider
// may rate a demande that is still in progress.
func (uc *demandeUC) AttachReview(ctx context.Context, id uuid.UUID, req *models.ReviewRequest) (*models.Demande, error) {
	if req.Rating == nil {
		return nil, apperror.Validation("rating is required")
	}
	if *req.Rating < 0 || *req.Rating > 5 {
		return nil, apperror.Validation("rating must be between 0 and 5")
	}

	demande, err := uc.demandeRepo.GetDemande(ctx, id)
	if err != nil {
		return nil, err
	}

	demande.Rating = req.Rating
	demande.Comment = req.Comment

	updated, err := uc.demandeRepo.UpdateDemande(ctx, demande)
	if err != nil {
		return nil, apperror.Internal("failed to persist review", err)
	}

	if err := uc.demandeGW.PublishDemandeUpdated(ctx, updated); err != nil {
		logger.Warn("Failed to publish demande updated event",
			logger.String("demande_id", id.String()),
			logger.Err(err))
	}

	return updated, nil
}

// GetDriverRating aggregates ratings over a driver's demandes. A driver
// without any rated demande yields the zero shape rather than an error.
func (uc *demandeUC) GetDriverRating(ctx context.Context, driverID uuid.UUID) (*models.DriverRating, error) {
	sum, count, err := uc.demandeRepo.GetDriverRatingStats(ctx, driverID)
	if err != nil {
		return nil, apperror.Internal("failed to aggregate ratings", err)
	}

	rating := &models.DriverRating{DriverID: driverID}
	if count > 0 {
		rating.AverageRating = math.Round(sum/float64(count)*10) / 10
		rating.TotalRatings = count
	}
	return rating, nil
}
