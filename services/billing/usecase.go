package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/colisgo/colisgo/internal/pkg/models"
)

// BillingUC defines the interface for billing business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/colisgo/colisgo/services/billing BillingUC
type BillingUC interface {
	// GetCommissionPercent never fails: it falls back to the configured
	// default when no setting exists or the registry is unreachable.
	GetCommissionPercent(ctx context.Context) float64
	UpdateCommissionPercent(ctx context.Context, req *models.UpdateCommissionRequest) (*models.CommissionSetting, error)

	ChargeCommission(ctx context.Context, req *models.SettlementRequest) (*models.SettlementResult, error)
	RecordPayment(ctx context.Context, driverID uuid.UUID, req *models.RecordPaymentRequest) (*models.Driver, error)
	GetBalance(ctx context.Context, driverID uuid.UUID) (*models.BalanceSummary, error)
	ListPayments(ctx context.Context, driverID uuid.UUID) ([]models.PaymentHistoryEntry, error)
}
