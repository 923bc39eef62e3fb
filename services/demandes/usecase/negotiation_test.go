package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colisgo/colisgo/internal/pkg/apperror"
	"github.com/colisgo/colisgo/internal/pkg/models"
)

func TestProposePrice_DriverTakesTheTurn(t *testing.T) {
	ctrl, mockRepo, mockGW, _, uc := newTestUC(t)
	defer ctrl.Finish()

	demande := driverDemande(models.DemandeStatusPending)
	demande.ProposerDriver = false
	demande.ProposerUser = true
	demande.ProposedPrice = 50000

	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(demande, nil)
	mockRepo.EXPECT().UpdateDemande(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Demande) (*models.Demande, error) {
			return d, nil
		})
	mockGW.EXPECT().PublishDemandeUpdated(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.ProposePrice(context.Background(), demande.ID, &models.ProposePriceRequest{
		Price:    60000,
		Proposer: models.ProposerSideDriver,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(60000), updated.ProposedPrice)
	assert.Equal(t, models.DemandeStatusInProgress, updated.Status)
	assert.True(t, updated.ProposerDriver)
	assert.False(t, updated.ProposerUser, "counter-party flag must be cleared")
}

func TestProposePrice_UserCounterOffer(t *testing.T) {
	ctrl, mockRepo, mockGW, _, uc := newTestUC(t)
	defer ctrl.Finish()

	demande := driverDemande(models.DemandeStatusInProgress)
	demande.ProposerDriver = true
	demande.ProposerUser = false

	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(demande, nil)
	mockRepo.EXPECT().UpdateDemande(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Demande) (*models.Demande, error) {
			return d, nil
		})
	mockGW.EXPECT().PublishDemandeUpdated(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.ProposePrice(context.Background(), demande.ID, &models.ProposePriceRequest{
		Price:    90000,
		Proposer: models.ProposerSideUser,
	})

	require.NoError(t, err)
	assert.True(t, updated.ProposerUser)
	assert.False(t, updated.ProposerDriver)
}

func TestProposePrice_SamePriceRejected(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	demande := driverDemande(models.DemandeStatusInProgress)

	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(demande, nil)

	_, err := uc.ProposePrice(context.Background(), demande.ID, &models.ProposePriceRequest{
		Price:    demande.ProposedPrice,
		Proposer: models.ProposerSideUser,
	})

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestProposePrice_NonPositivePrice(t *testing.T) {
	ctrl, _, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	for _, price := range []int64{0, -100} {
		_, err := uc.ProposePrice(context.Background(), driverDemande(models.DemandeStatusPending).ID,
			&models.ProposePriceRequest{Price: price, Proposer: models.ProposerSideDriver})
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	}
}

func TestProposePrice_UnknownProposer(t *testing.T) {
	ctrl, _, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	_, err := uc.ProposePrice(context.Background(), driverDemande(models.DemandeStatusPending).ID,
		&models.ProposePriceRequest{Price: 1000, Proposer: "platform"})

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestProposePrice_ClosedNegotiation(t *testing.T) {
	for _, status := range []models.DemandeStatus{models.DemandeStatusAccepted, models.DemandeStatusRejected} {
		ctrl, mockRepo, _, _, uc := newTestUC(t)

		demande := driverDemande(status)
		mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(demande, nil)

		_, err := uc.ProposePrice(context.Background(), demande.ID, &models.ProposePriceRequest{
			Price:    demande.ProposedPrice + 1,
			Proposer: models.ProposerSideDriver,
		})

		require.Error(t, err)
		assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
		ctrl.Finish()
	}
}
