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

// BillingRepo is the PostgreSQL-backed ledger and commission registry
type BillingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBillingRepository creates a new billing repository
func NewBillingRepository(cfg *models.Config, db *sqlx.DB) *BillingRepo {
	return &BillingRepo{cfg: cfg, db: db}
}

// GetDriver fetches the billing view of a driver
func (r *BillingRepo) GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	driver := &models.Driver{}
	query := `SELECT id, solde, created_at, updated_at FROM drivers WHERE id = $1`
	if err := r.db.GetContext(ctx, driver, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("driver not found")
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return driver, nil
}

// AdjustBalance applies a signed delta to the driver's balance and appends
// the ledger entry in one transaction. The balance mutation is relative
// (`solde = solde + $1`), never a read-modify-write, so concurrent
// settlements against the same driver both land.
func (r *BillingRepo) AdjustBalance(ctx context.Context, driverID uuid.UUID, delta int64, kind models.PaymentKind) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	result, err := tx.ExecContext(ctx,
		`UPDATE drivers SET solde = solde + $1, updated_at = $2 WHERE id = $3`,
		delta, now, driverID)
	if err != nil {
		return fmt.Errorf("failed to adjust balance: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return apperror.NotFound("driver not found")
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO payment_history (id, driver_id, amount, kind, created_at) VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), driverID, delta, kind, now)
	if err != nil {
		return fmt.Errorf("failed to append payment history: %w", err)
	}

	return tx.Commit()
}

// ListPayments returns the driver's ledger entries, newest first
func (r *BillingRepo) ListPayments(ctx context.Context, driverID uuid.UUID) ([]models.PaymentHistoryEntry, error) {
	entries := []models.PaymentHistoryEntry{}
	query := `
		SELECT id, driver_id, amount, kind, created_at
		FROM payment_history
		WHERE driver_id = $1
		ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &entries, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return entries, nil
}

// GetCommissionSetting returns the most recently updated commission record
func (r *BillingRepo) GetCommissionSetting(ctx context.Context) (*models.CommissionSetting, error) {
	setting := &models.CommissionSetting{}
	query := `SELECT id, percent, updated_at FROM commission_settings ORDER BY updated_at DESC LIMIT 1`
	if err := r.db.GetContext(ctx, setting, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("no commission setting configured")
		}
		return nil, fmt.Errorf("failed to get commission setting: %w", err)
	}
	return setting, nil
}

// SaveCommissionSetting records a new percentage; the latest record wins
func (r *BillingRepo) SaveCommissionSetting(ctx context.Context, percent float64) (*models.CommissionSetting, error) {
	setting := &models.CommissionSetting{
		ID:        uuid.New(),
		Percent:   percent,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO commission_settings (id, percent, updated_at) VALUES ($1, $2, $3)`,
		setting.ID, setting.Percent, setting.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save commission setting: %w", err)
	}
	return setting, nil
}
