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

func newMockRepo(t *testing.T) (*DemandeRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewDemandeRepository(&models.Config{}, sqlxDB), mock
}

func demandeRows(d *models.Demande) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "driver_id", "trajet_id",
		"pickup_point", "dropoff_point", "port_depart", "port_arrivee", "total_weight_kg",
		"proposed_price", "proposer_driver", "proposer_user", "status",
		"delivery_status", "commission_percent", "rating", "comment",
		"created_at", "updated_at",
	}).AddRow(
		d.ID, d.UserID, d.DriverID, d.TrajetID,
		d.PickupPoint, d.DropoffPoint, d.PortDepart, d.PortArrivee, d.TotalWeightKg,
		d.ProposedPrice, d.ProposerDriver, d.ProposerUser, d.Status,
		d.DeliveryStatus, d.CommissionPercent, d.Rating, d.Comment,
		d.CreatedAt, d.UpdatedAt,
	)
}

func TestGetDemande(t *testing.T) {
	repo, mock := newMockRepo(t)

	driverID := uuid.New()
	demande := &models.Demande{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		DriverID:       &driverID,
		PickupPoint:    "Paris",
		DropoffPoint:   "Dakar",
		TotalWeightKg:  23,
		ProposedPrice:  100000,
		ProposerDriver: true,
		Status:         models.DemandeStatusInProgress,
		DeliveryStatus: models.DeliveryStatusCollecte,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	mock.ExpectQuery(`SELECT(.|\s)+FROM demandes WHERE id = \$1`).
		WithArgs(demande.ID).
		WillReturnRows(demandeRows(demande))

	baggageID := uuid.New()
	mock.ExpectQuery(`SELECT baggage_id FROM demande_baggages`).
		WithArgs(demande.ID).
		WillReturnRows(sqlmock.NewRows([]string{"baggage_id"}).AddRow(baggageID))

	mock.ExpectQuery(`SELECT demande_id, delivery_status, created_at`).
		WithArgs(demande.ID).
		WillReturnRows(sqlmock.NewRows([]string{"demande_id", "delivery_status", "created_at"}).
			AddRow(demande.ID, models.DeliveryStatusPaye, time.Now().UTC()).
			AddRow(demande.ID, models.DeliveryStatusCollecte, time.Now().UTC()))

	got, err := repo.GetDemande(context.Background(), demande.ID)

	require.NoError(t, err)
	assert.Equal(t, demande.ID, got.ID)
	assert.Equal(t, []uuid.UUID{baggageID}, got.BaggageIDs)
	require.Len(t, got.DeliveryHistory, 2)
	assert.Equal(t, models.DeliveryStatusCollecte, got.DeliveryHistory[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDemande_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	mock.ExpectQuery(`SELECT(.|\s)+FROM demandes WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetDemande(context.Background(), id)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateDemande_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	demande := &models.Demande{ID: uuid.New(), Status: models.DemandeStatusPending}

	mock.ExpectExec(`UPDATE demandes SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateDemande(context.Background(), demande)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDemande_InsertsCargoInOneTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)

	demande := &models.Demande{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		PickupPoint:  "Paris",
		DropoffPoint: "Dakar",
		Status:       models.DemandeStatusPending,
		BaggageIDs:   []uuid.UUID{uuid.New(), uuid.New()},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO demandes`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO demande_baggages`).
		WithArgs(demande.ID, demande.BaggageIDs[0], 0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO demande_baggages`).
		WithArgs(demande.ID, demande.BaggageIDs[1], 1).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	created, err := repo.CreateDemande(context.Background(), demande)

	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendDeliveryEvent(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE demandes SET delivery_status`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO demande_delivery_events`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.AppendDeliveryEvent(context.Background(), id, models.DeliveryStatusEnDepot)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendDeliveryEvent_UnknownDemande(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE demandes SET delivery_status`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.AppendDeliveryEvent(context.Background(), uuid.New(), models.DeliveryStatusPaye)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetDriverRatingStats(t *testing.T) {
	repo, mock := newMockRepo(t)

	driverID := uuid.New()
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(rating\), 0\)`).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows([]string{"sum", "count"}).AddRow(12.0, 3))

	sum, count, err := repo.GetDriverRatingStats(context.Background(), driverID)

	require.NoError(t, err)
	assert.Equal(t, 12.0, sum)
	assert.Equal(t, 3, count)
}

func TestDeleteDemande(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM demande_baggages`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM demande_delivery_events`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM demandes`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteDemande(context.Background(), id)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
