package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colisgo/colisgo/internal/pkg/apperror"
	"github.com/colisgo/colisgo/internal/pkg/models"
)

func newMockRepo(t *testing.T) (*BillingRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewBillingRepository(&models.Config{}, sqlxDB), mock
}

func TestAdjustBalance_RelativeUpdateAndLedgerRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	driverID := uuid.New()

	mock.ExpectBegin()
	// the decrement must be relative, never a read-modify-write
	mock.ExpectExec(`UPDATE drivers SET solde = solde \+ \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO payment_history`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.AdjustBalance(context.Background(), driverID, -100, models.PaymentKindCommission)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustBalance_UnknownDriver(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE drivers SET solde = solde \+ \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.AdjustBalance(context.Background(), uuid.New(), 500, models.PaymentKindRecharge)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetDriver_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	mock.ExpectQuery(`SELECT id, solde, created_at, updated_at FROM drivers`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetDriver(context.Background(), id)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetCommissionSetting_LatestWins(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, percent, updated_at FROM commission_settings ORDER BY updated_at DESC LIMIT 1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "percent", "updated_at"}).
			AddRow(uuid.New(), 12.5, time.Now().UTC()))

	setting, err := repo.GetCommissionSetting(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12.5, setting.Percent)
}

func TestGetCommissionSetting_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, percent, updated_at FROM commission_settings`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetCommissionSetting(context.Background())

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
