package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colisgo/colisgo/internal/pkg/apperror"
	"github.com/colisgo/colisgo/internal/pkg/models"
	"github.com/colisgo/colisgo/services/billing/mocks"
)

func newTestUC(t *testing.T) (*gomock.Controller, *mocks.MockBillingRepo, *mocks.MockBillingGW, *mocks.MockCommissionCache, *billingUC) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockBillingRepo(ctrl)
	mockGW := mocks.NewMockBillingGW(ctrl)
	mockCache := mocks.NewMockCommissionCache(ctrl)
	cfg := &models.Config{
		Billing: models.BillingConfig{DefaultCommissionPercent: 10},
	}
	uc := NewBillingUC(cfg, mockRepo, mockGW, mockCache).(*billingUC)
	return ctrl, mockRepo, mockGW, mockCache, uc
}

func TestChargeCommission_Math(t *testing.T) {
	ctrl, mockRepo, mockGW, mockCache, uc := newTestUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	demandeID := uuid.New()

	mockRepo.EXPECT().GetDriver(gomock.Any(), driverID).Return(&models.Driver{ID: driverID}, nil)
	mockCache.EXPECT().GetPercent(gomock.Any()).Return(0.0, false)
	mockRepo.EXPECT().GetCommissionSetting(gomock.Any()).
		Return(nil, apperror.NotFound("no commission setting configured"))
	// price 1000 at the default 10 percent deducts exactly 100
	mockRepo.EXPECT().AdjustBalance(gomock.Any(), driverID, int64(-100), models.PaymentKindCommission).Return(nil)
	mockGW.EXPECT().PublishCommissionCharged(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.ChargeCommission(context.Background(), &models.SettlementRequest{
		DemandeID: demandeID,
		DriverID:  driverID,
		Price:     1000,
	})

	require.NoError(t, err)
	assert.Equal(t, 10.0, result.CommissionPercent)
	assert.Equal(t, int64(100), result.CommissionAmount)
}

func TestChargeCommission_ConfiguredPercentage(t *testing.T) {
	ctrl, mockRepo, mockGW, mockCache, uc := newTestUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()

	mockRepo.EXPECT().GetDriver(gomock.Any(), driverID).Return(&models.Driver{ID: driverID}, nil)
	mockCache.EXPECT().GetPercent(gomock.Any()).Return(0.0, false)
	mockRepo.EXPECT().GetCommissionSetting(gomock.Any()).
		Return(&models.CommissionSetting{Percent: 12.5}, nil)
	mockCache.EXPECT().SetPercent(gomock.Any(), 12.5)
	// 12.5% of 999 = 124.875, rounded once to 125
	mockRepo.EXPECT().AdjustBalance(gomock.Any(), driverID, int64(-125), models.PaymentKindCommission).Return(nil)
	mockGW.EXPECT().PublishCommissionCharged(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.ChargeCommission(context.Background(), &models.SettlementRequest{
		DemandeID: uuid.New(),
		DriverID:  driverID,
		Price:     999,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(125), result.CommissionAmount)
}

func TestChargeCommission_NonPositivePrice(t *testing.T) {
	ctrl, _, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	_, err := uc.ChargeCommission(context.Background(), &models.SettlementRequest{
		DemandeID: uuid.New(),
		DriverID:  uuid.New(),
		Price:     0,
	})

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestChargeCommission_UnknownDriver(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	mockRepo.EXPECT().GetDriver(gomock.Any(), driverID).
		Return(nil, apperror.NotFound("driver not found"))

	_, err := uc.ChargeCommission(context.Background(), &models.SettlementRequest{
		DemandeID: uuid.New(),
		DriverID:  driverID,
		Price:     1000,
	})

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestChargeCommission_ConcurrentSettlementsBothLand(t *testing.T) {
	ctrl, mockRepo, mockGW, mockCache, uc := newTestUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()

	var mu sync.Mutex
	var balance int64 = 1000

	mockRepo.EXPECT().GetDriver(gomock.Any(), driverID).
		Return(&models.Driver{ID: driverID, Solde: 1000}, nil).Times(2)
	mockCache.EXPECT().GetPercent(gomock.Any()).Return(10.0, true).Times(2)
	mockRepo.EXPECT().AdjustBalance(gomock.Any(), driverID, gomock.Any(), models.PaymentKindCommission).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, delta int64, _ models.PaymentKind) error {
			mu.Lock()
			balance += delta
			mu.Unlock()
			return nil
		}).Times(2)
	mockGW.EXPECT().PublishCommissionCharged(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.ChargeCommission(context.Background(), &models.SettlementRequest{
				DemandeID: uuid.New(),
				DriverID:  driverID,
				Price:     1000,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// both decrements applied, no lost update
	assert.Equal(t, int64(800), balance)
}

func TestGetCommissionPercent_CacheHit(t *testing.T) {
	ctrl, _, _, mockCache, uc := newTestUC(t)
	defer ctrl.Finish()

	mockCache.EXPECT().GetPercent(gomock.Any()).Return(15.0, true)

	assert.Equal(t, 15.0, uc.GetCommissionPercent(context.Background()))
}

func TestGetCommissionPercent_RegistryErrorFallsBack(t *testing.T) {
	ctrl, mockRepo, _, mockCache, uc := newTestUC(t)
	defer ctrl.Finish()

	mockCache.EXPECT().GetPercent(gomock.Any()).Return(0.0, false)
	mockRepo.EXPECT().GetCommissionSetting(gomock.Any()).
		Return(nil, apperror.Internal("storage down", nil))

	assert.Equal(t, 10.0, uc.GetCommissionPercent(context.Background()))
}

func TestUpdateCommissionPercent(t *testing.T) {
	ctrl, mockRepo, _, mockCache, uc := newTestUC(t)
	defer ctrl.Finish()

	percent := 12.0
	mockRepo.EXPECT().SaveCommissionSetting(gomock.Any(), percent).
		Return(&models.CommissionSetting{ID: uuid.New(), Percent: percent}, nil)
	mockCache.EXPECT().Invalidate(gomock.Any())

	setting, err := uc.UpdateCommissionPercent(context.Background(), &models.UpdateCommissionRequest{Percent: &percent})

	require.NoError(t, err)
	assert.Equal(t, 12.0, setting.Percent)
}

func TestUpdateCommissionPercent_Invalid(t *testing.T) {
	ctrl, _, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	for _, percent := range []float64{-1, 101} {
		p := percent
		_, err := uc.UpdateCommissionPercent(context.Background(), &models.UpdateCommissionRequest{Percent: &p})
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	}

	_, err := uc.UpdateCommissionPercent(context.Background(), &models.UpdateCommissionRequest{})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}
