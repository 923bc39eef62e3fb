package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/colisgo/colisgo/internal/pkg/models"
)

// BillingRepo defines the interface for billing data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/colisgo/colisgo/services/billing BillingRepo
type BillingRepo interface {
	GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error)

	// AdjustBalance applies a signed delta to the driver's balance and
	// appends the matching ledger row in one transaction. The balance
	// mutation is a single relative UPDATE so concurrent adjustments
	// against one driver serialize at the storage layer.
	AdjustBalance(ctx context.Context, driverID uuid.UUID, delta int64, kind models.PaymentKind) error

	ListPayments(ctx context.Context, driverID uuid.UUID) ([]models.PaymentHistoryEntry, error)

	GetCommissionSetting(ctx context.Context) (*models.CommissionSetting, error)
	SaveCommissionSetting(ctx context.Context, percent float64) (*models.CommissionSetting, error)
}
