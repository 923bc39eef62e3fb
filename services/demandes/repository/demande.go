package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/colisgo/colisgo/internal/pkg/apperror"
	"github.com/colisgo/colisgo/internal/pkg/models"
)

// DemandeRepo is the PostgreSQL-backed demande store
type DemandeRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDemandeRepository creates a new demande repository
func NewDemandeRepository(cfg *models.Config, db *sqlx.DB) *DemandeRepo {
	return &DemandeRepo{cfg: cfg, db: db}
}

const demandeColumns = `
	id, user_id, driver_id, trajet_id,
	pickup_point, dropoff_point, port_depart, port_arrivee, total_weight_kg,
	proposed_price, proposer_driver, proposer_user, status,
	delivery_status, commission_percent, rating, comment,
	created_at, updated_at`

// CreateDemande inserts the demande and its cargo references in one
// transaction.
func (r *DemandeRepo) CreateDemande(ctx context.Context, demande *models.Demande) (*models.Demande, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	demande.CreatedAt = now
	demande.UpdatedAt = now

	query := `
		INSERT INTO demandes (
			id, user_id, driver_id, trajet_id,
			pickup_point, dropoff_point, port_depart, port_arrivee, total_weight_kg,
			proposed_price, proposer_driver, proposer_user, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err = tx.ExecContext(ctx, query,
		demande.ID,
		demande.UserID,
		demande.DriverID,
		demande.TrajetID,
		demande.PickupPoint,
		demande.DropoffPoint,
		demande.PortDepart,
		demande.PortArrivee,
		demande.TotalWeightKg,
		demande.ProposedPrice,
		demande.ProposerDriver,
		demande.ProposerUser,
		demande.Status,
		demande.CreatedAt,
		demande.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert demande: %w", err)
	}

	if err := insertBaggages(ctx, tx, demande.ID, demande.BaggageIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit demande: %w", err)
	}
	return demande, nil
}

// GetDemande fetches one demande with its cargo set and delivery history
func (r *DemandeRepo) GetDemande(ctx context.Context, id uuid.UUID) (*models.Demande, error) {
	demande := &models.Demande{}
	query := `SELECT` + demandeColumns + ` FROM demandes WHERE id = $1`
	if err := r.db.GetContext(ctx, demande, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("demande not found")
		}
		return nil, fmt.Errorf("failed to get demande: %w", err)
	}

	baggages, err := r.baggageIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	demande.BaggageIDs = baggages

	history, err := r.GetDeliveryHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	demande.DeliveryHistory = history

	return demande, nil
}

// ListDemandes returns every demande, most recently updated first
func (r *DemandeRepo) ListDemandes(ctx context.Context) ([]*models.Demande, error) {
	query := `SELECT` + demandeColumns + ` FROM demandes ORDER BY updated_at DESC`
	return r.listDemandes(ctx, query)
}

func (r *DemandeRepo) ListDemandesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Demande, error) {
	query := `SELECT` + demandeColumns + ` FROM demandes WHERE user_id = $1 ORDER BY updated_at DESC`
	return r.listDemandes(ctx, query, userID)
}

func (r *DemandeRepo) ListDemandesByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Demande, error) {
	query := `SELECT` + demandeColumns + ` FROM demandes WHERE driver_id = $1 ORDER BY updated_at DESC`
	return r.listDemandes(ctx, query, driverID)
}

// ListDemandesByDriverAndTrajet returns the accepted demandes a driver
// carries on one trajet, the manifest view.
func (r *DemandeRepo) ListDemandesByDriverAndTrajet(ctx context.Context, driverID, trajetID uuid.UUID) ([]*models.Demande, error) {
	query := `SELECT` + demandeColumns + ` FROM demandes
		WHERE driver_id = $1 AND trajet_id = $2 AND status = $3
		ORDER BY updated_at DESC`
	return r.listDemandes(ctx, query, driverID, trajetID, models.DemandeStatusAccepted)
}

func (r *DemandeRepo) ListDemandesByStatus(ctx context.Context, status models.DemandeStatus) ([]*models.Demande, error) {
	query := `SELECT` + demandeColumns + ` FROM demandes WHERE status = $1 ORDER BY updated_at DESC`
	return r.listDemandes(ctx, query, status)
}

func (r *DemandeRepo) listDemandes(ctx context.Context, query string, args ...interface{}) ([]*models.Demande, error) {
	demandes := []*models.Demande{}
	if err := r.db.SelectContext(ctx, &demandes, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list demandes: %w", err)
	}
	for _, d := range demandes {
		baggages, err := r.baggageIDs(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		d.BaggageIDs = baggages
	}
	return demandes, nil
}

// UpdateDemande persists the mutable fields of a demande
func (r *DemandeRepo) UpdateDemande(ctx context.Context, demande *models.Demande) (*models.Demande, error) {
	demande.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE demandes SET
			driver_id = $1, trajet_id = $2,
			pickup_point = $3, dropoff_point = $4,
			port_depart = $5, port_arrivee = $6, total_weight_kg = $7,
			proposed_price = $8, proposer_driver = $9, proposer_user = $10,
			status = $11, commission_percent = $12,
			rating = $13, comment = $14, updated_at = $15
		WHERE id = $16
	`
	result, err := r.db.ExecContext(ctx, query,
		demande.DriverID,
		demande.TrajetID,
		demande.PickupPoint,
		demande.DropoffPoint,
		demande.PortDepart,
		demande.PortArrivee,
		demande.TotalWeightKg,
		demande.ProposedPrice,
		demande.ProposerDriver,
		demande.ProposerUser,
		demande.Status,
		demande.CommissionPercent,
		demande.Rating,
		demande.Comment,
		demande.UpdatedAt,
		demande.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update demande: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return nil, apperror.NotFound("demande not found")
	}
	return demande, nil
}

// DeleteDemande removes the demande and its dependent rows
func (r *DemandeRepo) DeleteDemande(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM demande_baggages WHERE demande_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete demande baggages: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM demande_delivery_events WHERE demande_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete delivery events: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM demandes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete demande: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return apperror.NotFound("demande not found")
	}

	return tx.Commit()
}

// ReplaceBaggages swaps the cargo set of a demande in one transaction
func (r *DemandeRepo) ReplaceBaggages(ctx context.Context, demandeID uuid.UUID, baggageIDs []uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM demande_baggages WHERE demande_id = $1`, demandeID); err != nil {
		return fmt.Errorf("failed to clear demande baggages: %w", err)
	}
	if err := insertBaggages(ctx, tx, demandeID, baggageIDs); err != nil {
		return err
	}

	return tx.Commit()
}

// ResolveBaggages returns the subset of ids that exist in the baggage store
func (r *DemandeRepo) ResolveBaggages(ctx context.Context, baggageIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(baggageIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT id FROM baggages WHERE id IN (?)`, baggageIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build baggage query: %w", err)
	}
	query = r.db.Rebind(query)

	resolved := []uuid.UUID{}
	if err := r.db.SelectContext(ctx, &resolved, query, args...); err != nil {
		return nil, fmt.Errorf("failed to resolve baggages: %w", err)
	}
	return resolved, nil
}

// AppendDeliveryEvent sets the new delivery status and appends its history
// record in one transaction.
func (r *DemandeRepo) AppendDeliveryEvent(ctx context.Context, demandeID uuid.UUID, status models.DeliveryStatus) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	result, err := tx.ExecContext(ctx,
		`UPDATE demandes SET delivery_status = $1, updated_at = $2 WHERE id = $3`,
		status, now, demandeID)
	if err != nil {
		return fmt.Errorf("failed to update delivery status: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return apperror.NotFound("demande not found")
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO demande_delivery_events (demande_id, delivery_status, created_at) VALUES ($1, $2, $3)`,
		demandeID, status, now)
	if err != nil {
		return fmt.Errorf("failed to append delivery event: %w", err)
	}

	return tx.Commit()
}

// GetDeliveryHistory returns the append-only delivery log, oldest first
func (r *DemandeRepo) GetDeliveryHistory(ctx context.Context, demandeID uuid.UUID) ([]models.DeliveryEvent, error) {
	events := []models.DeliveryEvent{}
	query := `
		SELECT demande_id, delivery_status, created_at
		FROM demande_delivery_events
		WHERE demande_id = $1
		ORDER BY created_at ASC
	`
	if err := r.db.SelectContext(ctx, &events, query, demandeID); err != nil {
		return nil, fmt.Errorf("failed to get delivery history: %w", err)
	}
	return events, nil
}

// GetDriverRatingStats returns the sum and count of non-null ratings across
// a driver's demandes.
func (r *DemandeRepo) GetDriverRatingStats(ctx context.Context, driverID uuid.UUID) (float64, int, error) {
	row := struct {
		Sum   float64 `db:"sum"`
		Count int     `db:"count"`
	}{}
	query := `
		SELECT COALESCE(SUM(rating), 0) AS sum, COUNT(rating) AS count
		FROM demandes
		WHERE driver_id = $1 AND rating IS NOT NULL
	`
	if err := r.db.GetContext(ctx, &row, query, driverID); err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate driver ratings: %w", err)
	}
	return row.Sum, row.Count, nil
}

func (r *DemandeRepo) baggageIDs(ctx context.Context, demandeID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	query := `SELECT baggage_id FROM demande_baggages WHERE demande_id = $1 ORDER BY position ASC`
	if err := r.db.SelectContext(ctx, &ids, query, demandeID); err != nil {
		return nil, fmt.Errorf("failed to get demande baggages: %w", err)
	}
	return ids, nil
}

func insertBaggages(ctx context.Context, tx *sqlx.Tx, demandeID uuid.UUID, baggageIDs []uuid.UUID) error {
	for i, baggageID := range baggageIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO demande_baggages (demande_id, baggage_id, position) VALUES ($1, $2, $3)`,
			demandeID, baggageID, i)
		if err != nil {
			return fmt.Errorf("failed to insert demande baggage: %w", err)
		}
	}
	return nil
}
