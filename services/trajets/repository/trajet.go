package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/colisgo/colisgo/internal/pkg/models"
)

// TrajetRepo is the PostgreSQL-backed trajet store
type TrajetRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTrajetRepository creates a new trajet repository
func NewTrajetRepository(cfg *models.Config, db *sqlx.DB) *TrajetRepo {
	return &TrajetRepo{cfg: cfg, db: db}
}

// CreateTrajet inserts a scheduled run
func (r *TrajetRepo) CreateTrajet(ctx context.Context, trajet *models.Trajet) (*models.Trajet, error) {
	trajet.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO trajets (id, driver_id, origin, destination, transport_mode, departure_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		trajet.ID,
		trajet.DriverID,
		trajet.Origin,
		trajet.Destination,
		trajet.TransportMode,
		trajet.DepartureDate,
		trajet.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert trajet: %w", err)
	}
	return trajet, nil
}

// ListTrajetsByDriver returns a driver's runs, upcoming first
func (r *TrajetRepo) ListTrajetsByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Trajet, error) {
	trajets := []*models.Trajet{}
	query := `
		SELECT id, driver_id, origin, destination, transport_mode, departure_date, created_at
		FROM trajets
		WHERE driver_id = $1
		ORDER BY departure_date ASC
	`
	if err := r.db.SelectContext(ctx, &trajets, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list trajets: %w", err)
	}
	return trajets, nil
}

// SearchTrajets returns matching runs inside the date window, ascending
func (r *TrajetRepo) SearchTrajets(ctx context.Context, from, to string, mode models.TransportMode, start, end time.Time) ([]*models.Trajet, error) {
	trajets := []*models.Trajet{}
	query := `
		SELECT id, driver_id, origin, destination, transport_mode, departure_date, created_at
		FROM trajets
		WHERE origin = $1 AND destination = $2 AND transport_mode = $3
		  AND departure_date BETWEEN $4 AND $5
		ORDER BY departure_date ASC
	`
	if err := r.db.SelectContext(ctx, &trajets, query, from, to, mode, start, end); err != nil {
		return nil, fmt.Errorf("failed to search trajets: %w", err)
	}
	return trajets, nil
}
