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
	"github.com/colisgo/colisgo/services/demandes/mocks"
)

func newTestUC(t *testing.T) (*gomock.Controller, *mocks.MockDemandeRepo, *mocks.MockDemandeGW, *mocks.MockBillingClient, *demandeUC) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockDemandeRepo(ctrl)
	mockGW := mocks.NewMockDemandeGW(ctrl)
	mockBilling := mocks.NewMockBillingClient(ctrl)
	cfg := &models.Config{}
	uc := NewDemandeUC(cfg, mockRepo, mockGW, mockBilling).(*demandeUC)
	return ctrl, mockRepo, mockGW, mockBilling, uc
}

func driverDemande(status models.DemandeStatus) *models.Demande {
	driverID := uuid.New()
	return &models.Demande{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		DriverID:       &driverID,
		PickupPoint:    "Paris",
		DropoffPoint:   "Dakar",
		ProposedPrice:  100000,
		ProposerDriver: true,
		Status:         status,
		BaggageIDs:     []uuid.UUID{uuid.New()},
	}
}

func TestAcceptDemande_ChargesCommissionOnce(t *testing.T) {
	ctrl, mockRepo, mockGW, mockBilling, uc := newTestUC(t)
	defer ctrl.Finish()

	demande := driverDemande(models.DemandeStatusInProgress)

	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(demande, nil)
	mockBilling.EXPECT().
		ChargeCommission(gomock.Any(), &models.SettlementRequest{
			DemandeID: demande.ID,
			DriverID:  *demande.DriverID,
			Price:     100000,
		}).
		Return(&models.SettlementResult{
			DemandeID:         demande.ID,
			DriverID:          *demande.DriverID,
			CommissionPercent: 10,
			CommissionAmount:  10000,
		}, nil)
	mockRepo.EXPECT().UpdateDemande(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Demande) (*models.Demande, error) {
			return d, nil
		})
	mockGW.EXPECT().PublishDemandeAccepted(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.AcceptDemande(context.Background(), demande.ID)

	require.NoError(t, err)
	assert.Equal(t, models.DemandeStatusAccepted, updated.Status)
	require.NotNil(t, updated.CommissionPercent)
	assert.Equal(t, 10.0, *updated.CommissionPercent)
}

func TestAcceptDemande_AlreadyAcceptedIsBillingNoop(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	demande := driverDemande(models.DemandeStatusAccepted)

	// no ChargeCommission, no UpdateDemande, no publish expected
	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(demande, nil)

	updated, err := uc.AcceptDemande(context.Background(), demande.ID)

	require.NoError(t, err)
	assert.Equal(t, models.DemandeStatusAccepted, updated.Status)
}

func TestAcceptDemande_PendingWithoutDriverProposal(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	demande := driverDemande(models.DemandeStatusPending)
	demande.ProposerDriver = false

	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(demande, nil)

	_, err := uc.AcceptDemande(context.Background(), demande.ID)

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestAcceptDemande_WithoutDriver(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	demande := driverDemande(models.DemandeStatusInProgress)
	demande.DriverID = nil

	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(demande, nil)

	_, err := uc.AcceptDemande(context.Background(), demande.ID)

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestAcceptDemande_WithoutPrice(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	demande := driverDemande(models.DemandeStatusInProgress)
	demande.ProposedPrice = 0

	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(demande, nil)

	_, err := uc.AcceptDemande(context.Background(), demande.ID)

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestAcceptDemande_AfterRejection(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	demande := driverDemande(models.DemandeStatusRejected)

	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(demande, nil)

	_, err := uc.AcceptDemande(context.Background(), demande.ID)

	require.Error(t, err)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestRejectDemande(t *testing.T) {
	ctrl, mockRepo, mockGW, _, uc := newTestUC(t)
	defer ctrl.Finish()

	demande := driverDemande(models.DemandeStatusInProgress)

	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(demande, nil)
	mockRepo.EXPECT().UpdateDemande(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Demande) (*models.Demande, error) {
			return d, nil
		})
	mockGW.EXPECT().PublishDemandeRejected(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.RejectDemande(context.Background(), demande.ID)

	require.NoError(t, err)
	assert.Equal(t, models.DemandeStatusRejected, updated.Status)
}

func TestRejectDemande_AfterAcceptance(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	demande := driverDemande(models.DemandeStatusAccepted)

	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(demande, nil)

	_, err := uc.RejectDemande(context.Background(), demande.ID)

	require.Error(t, err)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestUpdateDemande_PatchToAcceptedTriggersSettlement(t *testing.T) {
	ctrl, mockRepo, mockGW, mockBilling, uc := newTestUC(t)
	defer ctrl.Finish()

	demande := driverDemande(models.DemandeStatusInProgress)
	accepted := models.DemandeStatusAccepted
	patch := &models.DemandePatch{Status: &accepted}

	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(demande, nil)
	mockBilling.EXPECT().ChargeCommission(gomock.Any(), gomock.Any()).
		Return(&models.SettlementResult{CommissionPercent: 10, CommissionAmount: 10000}, nil)
	mockRepo.EXPECT().UpdateDemande(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Demande) (*models.Demande, error) {
			return d, nil
		})
	mockGW.EXPECT().PublishDemandeUpdated(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.UpdateDemande(context.Background(), demande.ID, patch)

	require.NoError(t, err)
	assert.Equal(t, models.DemandeStatusAccepted, updated.Status)
	require.NotNil(t, updated.CommissionPercent)
}

func TestUpdateDemande_PatchToAcceptedAlreadyAccepted(t *testing.T) {
	ctrl, mockRepo, mockGW, _, uc := newTestUC(t)
	defer ctrl.Finish()

	demande := driverDemande(models.DemandeStatusAccepted)
	accepted := models.DemandeStatusAccepted
	patch := &models.DemandePatch{Status: &accepted}

	// billing must not be called again
	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(demande, nil)
	mockRepo.EXPECT().UpdateDemande(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Demande) (*models.Demande, error) {
			return d, nil
		})
	mockGW.EXPECT().PublishDemandeUpdated(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.UpdateDemande(context.Background(), demande.ID, patch)

	require.NoError(t, err)
}

func TestUpdateDemande_EmptyBaggageReplacement(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	demande := driverDemande(models.DemandeStatusPending)
	patch := &models.DemandePatch{BaggageIDs: []uuid.UUID{}}

	mockRepo.EXPECT().GetDemande(gomock.Any(), demande.ID).Return(demande, nil)

	_, err := uc.UpdateDemande(context.Background(), demande.ID, patch)

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestCreateDemande(t *testing.T) {
	ctrl, mockRepo, mockGW, _, uc := newTestUC(t)
	defer ctrl.Finish()

	baggageID := uuid.New()
	req := &models.CreateDemandeRequest{
		UserID:        uuid.New(),
		PickupPoint:   "Paris",
		DropoffPoint:  "Dakar",
		TotalWeightKg: 23,
		ProposedPrice: 50000,
		BaggageIDs:    []uuid.UUID{baggageID},
	}

	mockRepo.EXPECT().ResolveBaggages(gomock.Any(), req.BaggageIDs).
		Return([]uuid.UUID{baggageID}, nil)
	mockRepo.EXPECT().CreateDemande(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Demande) (*models.Demande, error) {
			return d, nil
		})
	mockGW.EXPECT().PublishDemandeCreated(gomock.Any(), gomock.Any()).Return(nil)

	created, err := uc.CreateDemande(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, models.DemandeStatusPending, created.Status)
	assert.True(t, created.ProposerUser)
	assert.False(t, created.ProposerDriver)
}

func TestCreateDemande_EmptyCargo(t *testing.T) {
	ctrl, _, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	req := &models.CreateDemandeRequest{
		UserID:       uuid.New(),
		PickupPoint:  "Paris",
		DropoffPoint: "Dakar",
	}

	_, err := uc.CreateDemande(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestCreateDemande_UnresolvedBaggage(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	req := &models.CreateDemandeRequest{
		UserID:       uuid.New(),
		PickupPoint:  "Paris",
		DropoffPoint: "Dakar",
		BaggageIDs:   ids,
	}

	// only one of the two ids resolves
	mockRepo.EXPECT().ResolveBaggages(gomock.Any(), ids).Return(ids[:1], nil)

	_, err := uc.CreateDemande(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}
