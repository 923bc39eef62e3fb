package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colisgo/colisgo/internal/pkg/apperror"
	"github.com/colisgo/colisgo/internal/pkg/models"
)

func TestAttachReview(t *testing.T) {
	ctrl, mockRepo, mockGW, _, uc := newTestUC(t)
	defer ctrl.Finish()

	demande := driverDemande(models.DemandeStatusAccepted)
	rating := 4.5

	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(demande, nil)
	mockRepo.EXPECT().UpdateDemande(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Demande) (*models.Demande, error) {
			return d, nil
		})
	mockGW.EXPECT().PublishDemandeUpdated(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.AttachReview(context.Background(), demande.ID,
		&models.ReviewRequest{Rating: &rating, Comment: "smooth handoff"})

	require.NoError(t, err)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 4.5, *updated.Rating)
	assert.Equal(t, "smooth handoff", updated.Comment)
}

func TestAttachReview_RatingRequired(t *testing.T) {
	ctrl, _, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	_, err := uc.AttachReview(context.Background(), uuid.New(), &models.ReviewRequest{Comment: "no stars"})

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestAttachReview_WhileInProgress(t *testing.T) {
	// permissive on purpose: a rider may rate before the demande closes
	ctrl, mockRepo, mockGW, _, uc := newTestUC(t)
	defer ctrl.Finish()

	demande := driverDemande(models.DemandeStatusInProgress)
	rating := 3.0

	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(demande, nil)
	mockRepo.EXPECT().UpdateDemande(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Demande) (*models.Demande, error) {
			return d, nil
		})
	mockGW.EXPECT().PublishDemandeUpdated(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.AttachReview(context.Background(), demande.ID, &models.ReviewRequest{Rating: &rating})

	require.NoError(t, err)
}

func TestGetDriverRating(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	// ratings 4, 5 and 3
	mockRepo.EXPECT().GetDriverRatingStats(gomock.Any(), driverID).Return(12.0, 3, nil)

	rating, err := uc.GetDriverRating(context.Background(), driverID)

	require.NoError(t, err)
	assert.Equal(t, 4.0, rating.AverageRating)
	assert.Equal(t, 3, rating.TotalRatings)
}

func TestGetDriverRating_OneDecimalRounding(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	// 4 + 4 + 5 = 13, average 4.333...
	mockRepo.EXPECT().GetDriverRatingStats(gomock.Any(), driverID).Return(13.0, 3, nil)

	rating, err := uc.GetDriverRating(context.Background(), driverID)

	require.NoError(t, err)
	assert.Equal(t, 4.3, rating.AverageRating)
}

func TestGetDriverRating_ZeroShape(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	mockRepo.EXPECT().GetDriverRatingStats(gomock.Any(), driverID).Return(0.0, 0, nil)

	rating, err := uc.GetDriverRating(context.Background(), driverID)

	require.NoError(t, err)
	assert.Equal(t, 0.0, rating.AverageRating)
	assert.Equal(t, 0, rating.TotalRatings)
}
