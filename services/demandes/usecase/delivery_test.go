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

func TestAdvanceDeliveryStatus_Forward(t *testing.T) {
	ctrl, mockRepo, mockGW, _, uc := newTestUC(t)
	defer ctrl.Finish()

	demande := driverDemande(models.DemandeStatusAccepted)
	demande.DeliveryStatus = models.DeliveryStatusCollecte

	advanced := *demande
	advanced.DeliveryStatus = models.DeliveryStatusEnDepot

	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(demande, nil)
	mockRepo.EXPECT().AppendDeliveryEvent(gomock.Any(), demande.ID, models.DeliveryStatusEnDepot).Return(nil)
	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(&advanced, nil)
	mockGW.EXPECT().PublishDeliveryUpdated(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.AdvanceDeliveryStatus(context.Background(), demande.ID,
		&models.AdvanceDeliveryRequest{Status: models.DeliveryStatusEnDepot})

	require.NoError(t, err)
	assert.Equal(t, models.DeliveryStatusEnDepot, updated.DeliveryStatus)
}

func TestAdvanceDeliveryStatus_RegressionRefused(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	demande := driverDemande(models.DemandeStatusAccepted)
	demande.DeliveryStatus = models.DeliveryStatusEnLivraison

	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(demande, nil)

	_, err := uc.AdvanceDeliveryStatus(context.Background(), demande.ID,
		&models.AdvanceDeliveryRequest{Status: models.DeliveryStatusCollecte})

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestAdvanceDeliveryStatus_UnknownStatus(t *testing.T) {
	ctrl, _, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	_, err := uc.AdvanceDeliveryStatus(context.Background(), driverDemande(models.DemandeStatusAccepted).ID,
		&models.AdvanceDeliveryRequest{Status: "teleported"})

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestAdvanceDeliveryStatus_FirstStep(t *testing.T) {
	ctrl, mockRepo, mockGW, _, uc := newTestUC(t)
	defer ctrl.Finish()

	demande := driverDemande(models.DemandeStatusAccepted)
	// delivery track not started yet
	demande.DeliveryStatus = ""

	advanced := *demande
	advanced.DeliveryStatus = models.DeliveryStatusPaye

	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(demande, nil)
	mockRepo.EXPECT().AppendDeliveryEvent(gomock.Any(), demande.ID, models.DeliveryStatusPaye).Return(nil)
	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(&advanced, nil)
	mockGW.EXPECT().PublishDeliveryUpdated(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.AdvanceDeliveryStatus(context.Background(), demande.ID,
		&models.AdvanceDeliveryRequest{Status: models.DeliveryStatusPaye})

	require.NoError(t, err)
	assert.Equal(t, models.DeliveryStatusPaye, updated.DeliveryStatus)
}

func TestDeliveryStatusOrdinals(t *testing.T) {
	ordered := models.DeliveryStatuses()
	require.Len(t, ordered, 5)
	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Ordinal(), ordered[i-1].Ordinal())
	}
	assert.Equal(t, -1, models.DeliveryStatus("").Ordinal())
}
