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

func TestGetBalance_NetComputation(t *testing.T) {
	ctrl, mockRepo, _, mockCache, uc := newTestUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	mockRepo.EXPECT().GetDriver(gomock.Any(), driverID).
		Return(&models.Driver{ID: driverID, Solde: 1000}, nil)
	mockCache.EXPECT().GetPercent(gomock.Any()).Return(10.0, true)

	summary, err := uc.GetBalance(context.Background(), driverID)

	require.NoError(t, err)
	assert.Equal(t, int64(1000), summary.Gross)
	assert.Equal(t, 10.0, summary.CommissionPercent)
	assert.Equal(t, int64(100), summary.CommissionAmount)
	assert.Equal(t, int64(900), summary.Net)
}

func TestRecordPayment(t *testing.T) {
	ctrl, mockRepo, mockGW, _, uc := newTestUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	mockRepo.EXPECT().GetDriver(gomock.Any(), driverID).
		Return(&models.Driver{ID: driverID, Solde: 500}, nil)
	mockRepo.EXPECT().AdjustBalance(gomock.Any(), driverID, int64(2500), models.PaymentKindRecharge).Return(nil)
	mockRepo.EXPECT().GetDriver(gomock.Any(), driverID).
		Return(&models.Driver{ID: driverID, Solde: 3000}, nil)
	mockGW.EXPECT().PublishPaymentRecorded(gomock.Any(), gomock.Any()).Return(nil)

	driver, err := uc.RecordPayment(context.Background(), driverID, &models.RecordPaymentRequest{Amount: 2500})

	require.NoError(t, err)
	assert.Equal(t, int64(3000), driver.Solde)
}

func TestRecordPayment_NonPositiveAmount(t *testing.T) {
	ctrl, _, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	for _, amount := range []int64{0, -500} {
		_, err := uc.RecordPayment(context.Background(), uuid.New(), &models.RecordPaymentRequest{Amount: amount})
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	}
}

func TestListPayments(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	mockRepo.EXPECT().GetDriver(gomock.Any(), driverID).
		Return(&models.Driver{ID: driverID}, nil)
	mockRepo.EXPECT().ListPayments(gomock.Any(), driverID).
		Return([]models.PaymentHistoryEntry{
			{DriverID: driverID, Amount: -100, Kind: models.PaymentKindCommission},
			{DriverID: driverID, Amount: 2500, Kind: models.PaymentKindRecharge},
		}, nil)

	entries, err := uc.ListPayments(context.Background(), driverID)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(-100), entries[0].Amount)
}
