package billing

import (
	"context"

	"github.com/colisgo/colisgo/internal/pkg/models"
)

// BillingGW defines the interface for billing event publishing
// go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/colisgo/colisgo/services/billing BillingGW,CommissionCache
type BillingGW interface {
	PublishCommissionCharged(ctx context.Context, result *models.SettlementResult) error
	PublishPaymentRecorded(ctx context.Context, entry *models.PaymentHistoryEntry) error
}

// CommissionCache bounds registry reads; staleness is capped by the
// configured TTL and writes invalidate eagerly.
type CommissionCache interface {
	GetPercent(ctx context.Context) (float64, bool)
	SetPercent(ctx context.Context, percent float64)
	Invalidate(ctx context.Context)
}
